package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
)

func TestNewVisitorRecord_TruncatesToSeconds(t *testing.T) {
	at := time.Date(2024, 1, 15, 12, 0, 0, 999_000_000, time.UTC)

	rec := domain.NewVisitorRecord("203.0.113.7", at)

	assert.Equal(t, "203.0.113.7", rec.SourceAddress)
	assert.Equal(t, at.Unix(), rec.ArrivalTime)
}

func TestVisitorRecord_Key(t *testing.T) {
	a := domain.VisitorRecord{SourceAddress: "10.0.0.1", ArrivalTime: 100}
	b := domain.VisitorRecord{SourceAddress: "10.0.0.1", ArrivalTime: 101}
	c := domain.VisitorRecord{SourceAddress: "10.0.0.1", ArrivalTime: 100}

	assert.NotEqual(t, a.Key(), b.Key(), "same address at different times is a different visitor")
	assert.Equal(t, a.Key(), c.Key())
}
