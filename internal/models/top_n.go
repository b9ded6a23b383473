package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TopN is the number of rows a report should keep.
// TopNAll keeps every row ("All Values").
type TopN int

const (
	TopNAll TopN = math.MaxInt

	topNAllString = "all"
)

// ParseTopN accepts "all" (any case) or a positive integer.
func ParseTopN(s string) (TopN, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == topNAllString {
		return TopNAll, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid top-n %q: must be %q or a positive integer", s, topNAllString)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid top-n %q: must be positive", s)
	}
	return TopN(n), nil
}

func (n TopN) IsAll() bool {
	return n == TopNAll
}

func (n TopN) String() string {
	if n.IsAll() {
		return topNAllString
	}
	return strconv.Itoa(int(n))
}
