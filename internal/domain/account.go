package domain

type UserAccount struct {
	Username      string
	TotalDuration int64
	IsOpen        bool
	// OpenedAt is meaningful only while IsOpen is true.
	OpenedAt int64
}
