package verifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"payout-engine/internal/core/port"
)

// PaymentClient checks transactions through the ledger indexer service. It
// never submits transactions.
type PaymentClient struct {
	c *client
}

var _ port.PaymentVerifier = (*PaymentClient)(nil)

func NewPaymentClient(baseURL, apiKey string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{c: newClient("payment", baseURL, apiKey, timeout)}
}

// Transaction statuses reported by the indexer.
const (
	txSuccess = "success"
	txFailure = "failure"
)

type transfer struct {
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

type transactionResponse struct {
	TxRef     string     `json:"tx_ref"`
	Status    string     `json:"status"`
	Confirmed bool       `json:"confirmed"`
	Sequence  *int64     `json:"sequence"`
	Transfers []transfer `json:"transfers"`
}

func (p *PaymentClient) lookup(ctx context.Context, txRef string) (transactionResponse, error) {
	var out transactionResponse
	err := p.c.do(ctx, http.MethodGet, "/transactions/"+url.PathEscape(txRef), nil, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return out, fmt.Errorf("%w: %s", port.ErrTxNotFound, txRef)
		}
		return out, err
	}
	if !out.Confirmed {
		return out, fmt.Errorf("%w: %s is not confirmed", port.ErrTxNotFound, txRef)
	}
	if out.Status != txSuccess {
		return out, fmt.Errorf("%w: %s has status %q", port.ErrTxFailed, txRef, out.Status)
	}
	return out, nil
}

func (p *PaymentClient) VerifyConfirmed(ctx context.Context, txRef string) (port.TxReceipt, error) {
	tx, err := p.lookup(ctx, txRef)
	if err != nil {
		return port.TxReceipt{}, err
	}
	return port.TxReceipt{TxRef: txRef, Sequence: tx.Sequence}, nil
}

// VerifyTransfer requires one transfer of exactly amount to recipient.
// Addresses compare case-insensitively.
func (p *PaymentClient) VerifyTransfer(ctx context.Context, txRef, recipient string, amount int64) error {
	tx, err := p.lookup(ctx, txRef)
	if err != nil {
		return err
	}
	for _, t := range tx.Transfers {
		if strings.EqualFold(t.Recipient, recipient) && t.Amount == amount {
			return nil
		}
	}
	return fmt.Errorf("%w: %s has no transfer of %d to %s", port.ErrTxMismatch, txRef, amount, recipient)
}
