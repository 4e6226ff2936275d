package ranking

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Contribution is a member's fame in one war, or absent when the member did not
// take part for the queried clan. Absent and zero are different values. The zero
// Contribution is absent.
type Contribution struct {
	fame    int
	present bool
}

func Absent() Contribution { return Contribution{} }

func Fame(n int) Contribution { return Contribution{fame: n, present: true} }

func (c Contribution) Present() bool { return c.present }

func (c Contribution) Value() (int, bool) { return c.fame, c.present }

// Or returns the fame, or def when absent.
func (c Contribution) Or(def int) int {
	if !c.present {
		return def
	}
	return c.fame
}

func (c Contribution) String() string {
	if !c.present {
		return "absent"
	}
	return fmt.Sprintf("%d", c.fame)
}

func (c Contribution) MarshalJSON() ([]byte, error) {
	if !c.present {
		return []byte("null"), nil
	}
	return json.Marshal(c.fame)
}

func (c *Contribution) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = Absent()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("contribution: %w", err)
	}
	*c = Fame(n)
	return nil
}

// WindowSize is how many past wars feed a member's average.
const WindowSize = 6

// Timeline holds one contribution per retained war, index 0 being the most recent.
type Timeline [WindowSize]Contribution

func (t Timeline) WeeksEligible() int {
	n := 0
	for _, c := range t {
		if c.present {
			n++
		}
	}
	return n
}

// Average is the integer mean of the present entries, nil when there are none.
func (t Timeline) Average() *int {
	sum, n := 0, 0
	for _, c := range t {
		if c.present {
			sum += c.fame
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / n
	return &avg
}
