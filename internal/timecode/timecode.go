// Package timecode converts user-supplied time tokens into offsets in seconds.
package timecode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/ytfetch/internal/common"
)

// Parse converts a time token into seconds. Accepted forms:
//
//	HH:MM:SS  clock style, MM and SS in [0,59], HH unbounded
//	MM:SS     two components are minutes:seconds with HH=0
//	90        a bare non-negative integer is taken as seconds
//
// Leading zeros are fine. Anything else fails with an error wrapping
// common.ErrInvalidTimeFormat that names the offending token.
func Parse(token string) (int, error) {
	parts := strings.Split(token, ":")

	switch len(parts) {
	case 1:
		secs, err := strconv.Atoi(parts[0])
		if err != nil || secs < 0 {
			return 0, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, token)
		}
		return secs, nil
	case 2:
		// MM:SS with an implicit zero hour
		parts = append([]string{"0"}, parts...)
	case 3:
	default:
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, token)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, token)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, token)
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, token)
	}

	return hours*3600 + minutes*60 + seconds, nil
}
