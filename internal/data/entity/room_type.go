package entity

type RoomType struct {
	Base
	Name        string  `db:"name"`
	BaseRate    float64 `db:"base_rate"`
	Capacity    int     `db:"capacity"`
	Description string  `db:"description"`
}
