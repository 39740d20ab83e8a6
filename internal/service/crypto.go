package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/rates"
	"github.com/Dan9191/saveeasy/internal/utils"
)

// BuyCrypto simulates buying coins worth nairaAmount
func (s *Service) BuyCrypto(ctx context.Context, symbol string, nairaAmount float64) Result[models.CryptoTransaction] {
	return s.tradeCrypto(ctx, "buy_crypto", models.CryptoBuy, symbol, nairaAmount)
}

// SellCrypto simulates selling coinAmount coins
func (s *Service) SellCrypto(ctx context.Context, symbol string, coinAmount float64) Result[models.CryptoTransaction] {
	return s.tradeCrypto(ctx, "sell_crypto", models.CryptoSell, symbol, coinAmount)
}

func (s *Service) tradeCrypto(ctx context.Context, op string, side models.CryptoSide, symbol string, amount float64) Result[models.CryptoTransaction] {
	start := time.Now()

	if amount <= 0 {
		return observe(s, op, start, invalidAmount[models.CryptoTransaction]())
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	price, err := s.quotes.CryptoPrice(symbol)
	if err != nil {
		if errors.Is(err, rates.ErrUnknownSymbol) {
			return observe(s, op, start, fail[models.CryptoTransaction]("Unsupported currency",
				fmt.Sprintf("No price available for %q", symbol)))
		}
		return observe(s, op, start, fail[models.CryptoTransaction]("Pricing unavailable", err.Error()))
	}

	if err := s.wait(ctx, s.rules.Delays.Crypto); err != nil {
		return observe(s, op, start, cancelled[models.CryptoTransaction](err))
	}

	p := decimal.NewFromFloat(price)
	usd := decimal.NewFromFloat(s.quotes.NairaPerUSD())
	var coins, naira decimal.Decimal
	if side == models.CryptoBuy {
		naira = decimal.NewFromFloat(amount)
		coins = naira.Div(p)
	} else {
		coins = decimal.NewFromFloat(amount)
		naira = coins.Mul(p)
	}

	tx := models.CryptoTransaction{
		ID:         utils.GenerateID(),
		Type:       side,
		Currency:   symbol,
		Amount:     coins.Round(8).InexactFloat64(),
		USDValue:   naira.Div(usd).Round(2).InexactFloat64(),
		NairaValue: naira.Round(2).InexactFloat64(),
		Fee:        naira.Mul(decimal.NewFromFloat(s.rules.CryptoFeeRate)).Round(2).InexactFloat64(),
		Date:       s.now(),
		Status:     models.StatusCompleted,
		TxHash:     utils.GenerateTxHash(),
	}

	verb := "purchased"
	if side == models.CryptoSell {
		verb = "sold"
	}
	return observe(s, op, start, ok(tx, fmt.Sprintf("Successfully %s %s", verb, symbol)))
}
