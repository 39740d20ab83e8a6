// Package rates holds the naira exchange-rate sheet used for crypto and
// dollar conversions. The sheet ships embedded and can be refreshed from a
// remote XML document of the same shape.
package rates

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"
)

//go:embed default_rates.xml
var defaultSheet []byte

// ErrUnknownSymbol is returned for a currency code missing from the sheet
var ErrUnknownSymbol = errors.New("unknown currency symbol")

// Sheet is a table of naira prices. It is safe for concurrent use.
type Sheet struct {
	mu            sync.RWMutex
	date          string
	fiat          map[string]float64
	crypto        map[string]float64
	defaultCrypto float64
}

// Default returns the embedded rate sheet
func Default() *Sheet {
	s, err := Parse(defaultSheet)
	if err != nil {
		panic(fmt.Sprintf("embedded rate sheet: %v", err))
	}
	return s
}

// Parse reads a RateSheet XML document
func Parse(raw []byte) (*Sheet, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	root := doc.SelectElement("RateSheet")
	if root == nil {
		return nil, fmt.Errorf("no RateSheet element found in XML")
	}

	s := &Sheet{
		date:   root.SelectAttrValue("date", ""),
		fiat:   make(map[string]float64),
		crypto: make(map[string]float64),
	}

	if el := root.SelectElement("DefaultCrypto"); el != nil {
		v, err := parsePrice(el.Text())
		if err != nil {
			return nil, fmt.Errorf("failed to parse default crypto price: %w", err)
		}
		s.defaultCrypto = v
	}

	for _, section := range []struct {
		path  string
		table map[string]float64
	}{
		{"./Fiat/Rate", s.fiat},
		{"./Crypto/Rate", s.crypto},
	} {
		for _, el := range root.FindElements(section.path) {
			code := strings.ToUpper(strings.TrimSpace(el.SelectAttrValue("code", "")))
			if code == "" {
				return nil, fmt.Errorf("rate without code attribute")
			}
			v, err := parsePrice(el.Text())
			if err != nil {
				return nil, fmt.Errorf("failed to parse rate %s: %w", code, err)
			}
			section.table[code] = v
		}
	}

	if _, ok := s.fiat["USD"]; !ok {
		return nil, fmt.Errorf("rate sheet has no USD rate")
	}
	return s, nil
}

func parsePrice(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("price must be positive, got %v", v)
	}
	return v, nil
}

// Date is the publication date of the sheet
func (s *Sheet) Date() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.date
}

// NairaPerUSD returns the dollar rate
func (s *Sheet) NairaPerUSD() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fiat["USD"]
}

// Rate looks up a fiat or crypto price by code
func (s *Sheet) Rate(code string) (float64, error) {
	code = strings.ToUpper(code)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.fiat[code]; ok {
		return v, nil
	}
	if v, ok := s.crypto[code]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, code)
}

// CryptoPrice returns the naira price of one coin. Unlisted coins use the
// sheet's default price; ErrUnknownSymbol is returned only when there is none.
func (s *Sheet) CryptoPrice(symbol string) (float64, error) {
	symbol = strings.ToUpper(symbol)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.crypto[symbol]; ok {
		return v, nil
	}
	if s.defaultCrypto > 0 && symbol != "" {
		return s.defaultCrypto, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
}

// Replace swaps in the contents of another sheet
func (s *Sheet) Replace(other *Sheet) {
	other.mu.RLock()
	date, fiat, crypto, def := other.date, other.fiat, other.crypto, other.defaultCrypto
	other.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.date, s.fiat, s.crypto, s.defaultCrypto = date, fiat, crypto, def
}
