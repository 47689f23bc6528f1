package hours

import (
	"fmt"
	"strings"
	"unicode"

	"restohours/models"
)

// timeTokens is the number of trailing tokens that make up a time range:
// start, am/pm, "-", end, am/pm.
const timeTokens = 5

// Mode selects how the parser treats input it does not understand.
type Mode int

const (
	// BestEffort never fails. Unknown days resolve to -1 and unreadable numbers to 0.
	BestEffort Mode = iota
	// Strict rejects an entry at the first unknown day or malformed time.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "best-effort"
}

// ParseMode maps a configuration value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "best-effort", "besteffort":
		return BestEffort, nil
	case "strict":
		return Strict, nil
	default:
		return BestEffort, fmt.Errorf("unknown parse mode %q", s)
	}
}

// Option configures a Parser.
type Option func(*Parser)

// WithMode sets the parsing mode.
func WithMode(m Mode) Option {
	return func(p *Parser) { p.mode = m }
}

// WithStrict is shorthand for WithMode(Strict).
func WithStrict() Option {
	return WithMode(Strict)
}

// Parser turns schedule strings into normalized operating hours.
type Parser struct {
	mode Mode
}

// NewParser returns a best-effort parser unless options say otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{mode: BestEffort}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) Mode() Mode {
	return p.mode
}

// Parse converts every entry and concatenates the results in input order.
//
//	given:   ["Mon-Wed 5 pm - 12:30 am", "Sun 3 pm - 11:30 pm"]
//	returns: {1 1700 2430} {2 0 30} {2 1700 2430} {3 0 30} {3 1700 2430} {4 0 30} {0 1500 2330}
//
// In BestEffort mode the error is always nil.
func (p *Parser) Parse(entries []string) ([]models.OperatingHours, error) {
	hours := make([]models.OperatingHours, 0, len(entries))
	for i, entry := range entries {
		parsed, err := p.ParseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("schedule entry %d: %w", i, err)
		}
		hours = append(hours, parsed...)
	}
	return hours, nil
}

// ParseEntry converts a single schedule string such as "Mon-Tue, Thu 10 am - 1 am".
func (p *Parser) ParseEntry(entry string) ([]models.OperatingHours, error) {
	parts := tokenize(entry)
	split := len(parts) - timeTokens
	if split < 0 {
		// Short entries are read as a bare time range with no days, so they yield no intervals.
		split = 0
	}
	dayTokens, rangeTokens := parts[:split], parts[split:]

	var (
		days      []int
		timeRange models.TimeRange
		err       error
	)
	if p.mode == Strict {
		if len(dayTokens) == 0 {
			return nil, newParseError(CodeMissingDays, entry, "", "no day range before time range")
		}
		if timeRange, err = parseTimeRangeStrict(entry, rangeTokens); err != nil {
			return nil, err
		}
	} else {
		timeRange = ParseTimeRange(rangeTokens)
	}
	if days, err = parseDayRanges(entry, dayTokens, p.mode == Strict); err != nil {
		return nil, err
	}

	var hours []models.OperatingHours
	for _, dayIdx := range days {
		hours = append(hours, models.OperatingHours{DayIdx: dayIdx, Start: timeRange.Start, End: timeRange.End})
		if timeRange.End >= models.DayThreshold {
			hours = append(hours, models.OperatingHours{
				DayIdx: NextDayIdx(dayIdx),
				Start:  0,
				End:    timeRange.End - models.DayThreshold,
			})
		}
	}
	return hours, nil
}

// ToOperatingHours parses entries in BestEffort mode.
func ToOperatingHours(entries []string) []models.OperatingHours {
	hours, _ := NewParser().Parse(entries)
	return hours
}

func tokenize(entry string) []string {
	return strings.FieldsFunc(entry, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
