package domain

type RoomFields struct {
	RoomName *string `json:"raumname,omitempty"`
	Building *string `json:"gebaeude,omitempty"`
	Capacity *int    `json:"kapazitaet,omitempty"`
}

type Room = Record[RoomFields]
