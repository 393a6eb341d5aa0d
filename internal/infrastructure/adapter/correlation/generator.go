package correlation

import (
	"encoding/hex"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/google/uuid"
)

// TimestampGenerator builds codes from the millisecond clock and a random
// suffix, e.g. 1717171717171A3F9C2. Codes sort by creation time, which makes
// them easy to find in a bank statement.
type TimestampGenerator struct {
	timeProvider coreport.TimeProvider
}

// NewTimestampGenerator creates a correlation code generator
func NewTimestampGenerator(timeProvider coreport.TimeProvider) *TimestampGenerator {
	return &TimestampGenerator{timeProvider: timeProvider}
}

// Generate returns a fresh code of at most 19 characters
func (g *TimestampGenerator) Generate() string {
	id := uuid.New()
	suffix := strings.ToUpper(hex.EncodeToString(id[:3]))
	return fmt.Sprintf("%d%s", g.timeProvider.Now().UnixMilli(), suffix)
}
