package application

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed acks.yaml
var defaultAcks []byte

type AckRule struct {
	Keywords []string `yaml:"keywords"`
	Text     string   `yaml:"text"`
}

type ackTable struct {
	Sector domain.SectorID `yaml:"sector"`
	Rules  []AckRule       `yaml:"rules"`
}

// Preprocessor acknowledges a few known commands locally while the player is
// in the boot sector, so the first interactions do not wait on the server.
type Preprocessor struct {
	sector domain.SectorID
	rules  []AckRule
}

func NewPreprocessor(sector domain.SectorID, rules []AckRule) (*Preprocessor, error) {
	normalized := make([]AckRule, 0, len(rules))
	for i, rule := range rules {
		if strings.TrimSpace(rule.Text) == "" {
			return nil, fmt.Errorf("ack rule %d: text is required", i)
		}

		keywords := make([]string, 0, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword == "" {
				continue
			}
			keywords = append(keywords, keyword)
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("ack rule %d: at least one keyword is required", i)
		}

		normalized = append(normalized, AckRule{Keywords: keywords, Text: rule.Text})
	}

	return &Preprocessor{sector: sector, rules: normalized}, nil
}

// ParseAckTable decodes a YAML acknowledgment table. Unknown fields are
// rejected.
func ParseAckTable(data []byte) (*Preprocessor, error) {
	var table ackTable
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("decode ack table: %w", err)
	}
	if len(table.Rules) == 0 {
		return nil, errors.New("ack table has no rules")
	}

	return NewPreprocessor(table.Sector, table.Rules)
}

func DefaultPreprocessor() *Preprocessor {
	p, err := ParseAckTable(defaultAcks)
	if err != nil {
		panic("application: embedded ack table: " + err.Error())
	}
	return p
}

// Acknowledge returns the local entry for command, if any. It only applies
// while location is inside the local sector; an unknown location is never
// local.
func (p *Preprocessor) Acknowledge(location string, command string) (domain.LogEntry, bool) {
	if p == nil || !p.inLocalContext(location) {
		return domain.LogEntry{}, false
	}

	normalized := strings.ToLower(command)
	for _, rule := range p.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				entry := domain.SystemEntry(domain.EntryTypeSuccess, rule.Text)
				entry.Local = true
				return entry, true
			}
		}
	}

	return domain.LogEntry{}, false
}

func (p *Preprocessor) inLocalContext(location string) bool {
	sector, ok := ExtractSector(location)
	return ok && sector == p.sector
}
