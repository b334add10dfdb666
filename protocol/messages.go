package protocol

// client -> server

type Hello struct {
	Name string `json:"name,omitempty" msgpack:"name,omitempty"`
}

// Command is a player input. Level is only set for set_difficulty.
type Command struct {
	Name  string `json:"name" msgpack:"name"`
	Level string `json:"level,omitempty" msgpack:"level,omitempty"`
}

// server -> client

type Welcome struct {
	RoomID   string `json:"roomId" msgpack:"roomId"`
	ClientID string `json:"clientId" msgpack:"clientId"`
	FrameMs  int    `json:"frameMs" msgpack:"frameMs"`
}

type State struct {
	Frame       uint64     `json:"frame" msgpack:"frame"`
	Round       string     `json:"round" msgpack:"round"`
	Difficulty  string     `json:"difficulty" msgpack:"difficulty"`
	Ball        Body       `json:"ball" msgpack:"ball"`
	LeftPaddle  Point      `json:"leftPaddle" msgpack:"leftPaddle"`
	RightPaddle Point      `json:"rightPaddle" msgpack:"rightPaddle"`
	Entities    []Drawable `json:"entities,omitempty" msgpack:"entities,omitempty"`
}

type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

type Body struct {
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
	VX float64 `json:"vx" msgpack:"vx"`
	VY float64 `json:"vy" msgpack:"vy"`
}

// Drawable is a column-major 4x4 transform plus an RGBA color.
type Drawable struct {
	Name      string      `json:"name" msgpack:"name"`
	Transform [16]float64 `json:"m" msgpack:"m"`
	Color     [4]float64  `json:"c" msgpack:"c"`
}

type Error struct {
	Error string `json:"error" msgpack:"error"`
}

type RoomInfo struct {
	ID      string `json:"id" msgpack:"id"`
	Clients int    `json:"clients" msgpack:"clients"`
}

type RoomList struct {
	Rooms []RoomInfo `json:"rooms" msgpack:"rooms"`
}
