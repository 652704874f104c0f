package dtos

type InvoicesQuery struct {
	Page   int    `form:"page" validate:"gte=0"`
	Search string `form:"search" validate:"max=200"`
}

type ExportQuery struct {
	Search string `form:"search" validate:"max=200"`
}

type EventsQuery struct {
	Page     int      `form:"page" validate:"gte=0"`
	Offset   int      `form:"offset" validate:"gte=0"`
	After    string   `form:"after" validate:"max=255"`
	Dates    []string `form:"date" validate:"max=400,dive,max=64"`
	Selected string   `form:"selected" validate:"max=255"`
}
