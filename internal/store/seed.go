package store

import (
	"time"
)

type Seed struct {
	ID         string `gorm:"primarykey"`
	ExecutedAt time.Time
}
