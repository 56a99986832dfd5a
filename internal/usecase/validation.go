package usecase

import (
	"strconv"

	domainErrors "github.com/polkiloo/flowerbot/internal/domain/errors"
)

// ParseOrderID converts a path segment into an order identifier. Only plain
// ASCII digit sequences are accepted.
func ParseOrderID(segment string) (int64, error) {
	if segment == "" {
		return 0, domainErrors.ErrInvalidOrderID
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, domainErrors.ErrInvalidOrderID
		}
	}
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, domainErrors.ErrInvalidOrderID
	}
	return id, nil
}
