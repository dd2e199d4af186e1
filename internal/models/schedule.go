package models

// ClassSchedule is one weekly class session of an enrollment.
type ClassSchedule struct {
	Day  Weekday `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Time string  `json:"time" validate:"required,schedule_time"`
}
