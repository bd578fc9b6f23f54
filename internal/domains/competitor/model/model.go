package model

import (
	"time"

	"lodge/shared/model"
)

const (
	SurveyTableName  = "competitor_price_surveys"
	SurveyEntityName = "competitor_price_survey"

	RoomTableName  = "competitor_rooms"
	RoomEntityName = "competitor_room"

	FieldID         = "id"
	FieldSurveyID   = "survey_id"
	FieldRoomID     = "room_id"
	FieldSurveyDate = "survey_date"
	FieldPrice      = "price"
)

type Survey struct {
	ID             string    `db:"id"`
	SurveyDate     time.Time `db:"survey_date"`
	CompetitorName string    `db:"competitor_name"`
	model.Metadata
}

// CompetitorRoom is one surveyed price, mapped to our comparable room.
type CompetitorRoom struct {
	ID                 string  `db:"id"`
	SurveyID           string  `db:"survey_id"`
	RoomID             string  `db:"room_id"`
	CompetitorRoomName string  `db:"competitor_room_name"`
	Price              float64 `db:"price"`
}

type Summary struct {
	Average     float64 `db:"average"`
	Min         float64 `db:"min_price"`
	Max         float64 `db:"max_price"`
	SampleCount int     `db:"sample_count"`
}
