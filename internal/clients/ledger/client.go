// Package ledger is an API client that records posted payments and refunds
// in postgres. Card numbers are never stored: metadata keeps a masked
// number and a keyed fingerprint instead.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payproc/internal/models"
	"payproc/internal/repositories"
	"payproc/internal/utils"
)

// Metadata keys written in place of the card number.
const (
	MetaCardMasked      = "cardMasked"
	MetaCardFingerprint = "cardFingerprint"
)

var ErrUnexpectedBody = errors.New("unexpected body for ledger")

type Client struct {
	repo           repositories.LedgerRepository
	fingerprintKey []byte
}

func New(repo repositories.LedgerRepository, fingerprintKey []byte) *Client {
	return &Client{repo: repo, fingerprintKey: fingerprintKey}
}

func (c *Client) Post(ctx context.Context, path string, body any) error {
	var (
		entry *models.LedgerEntry
		err   error
	)
	switch b := body.(type) {
	case *models.Transaction:
		entry, err = c.paymentEntry(b)
	case *models.Refund:
		entry, err = c.refundEntry(b)
	default:
		return fmt.Errorf("%w %s: %T", ErrUnexpectedBody, path, body)
	}
	if err != nil {
		return err
	}

	if err := c.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record %s %s: %w", entry.Kind, entry.RecordID, err)
	}
	return nil
}

func (c *Client) paymentEntry(tx *models.Transaction) (*models.LedgerEntry, error) {
	meta, err := c.redact(tx.Metadata)
	if err != nil {
		return nil, err
	}
	recordedAt, err := parseTime(tx.Timestamp)
	if err != nil {
		return nil, err
	}

	entry := &models.LedgerEntry{
		Kind:          models.LedgerKindPayment,
		RecordID:      tx.ID,
		UserID:        tx.UserID,
		Amount:        tx.OriginalAmount,
		NetAmount:     tx.FinalAmount,
		Currency:      tx.Currency,
		PaymentMethod: string(tx.PaymentMethod),
		Metadata:      meta,
		RecordedAt:    recordedAt,
	}
	if tx.DiscountCode != nil {
		entry.DiscountCode = *tx.DiscountCode
	}
	return entry, nil
}

func (c *Client) refundEntry(r *models.Refund) (*models.LedgerEntry, error) {
	meta, err := c.redact(r.Metadata)
	if err != nil {
		return nil, err
	}
	recordedAt, err := parseTime(r.Date)
	if err != nil {
		return nil, err
	}

	return &models.LedgerEntry{
		Kind:       models.LedgerKindRefund,
		RecordID:   r.ID,
		Reference:  r.TransactionID,
		UserID:     r.UserID,
		Amount:     r.Amount,
		NetAmount:  r.NetAmount,
		Currency:   r.Currency,
		Reason:     r.Reason,
		Metadata:   meta,
		RecordedAt: recordedAt,
	}, nil
}

// redact copies meta, replacing the card number with its masked form and
// fingerprint.
func (c *Client) redact(meta models.Metadata) (models.Metadata, error) {
	out := meta.Clone()
	card, ok := out[models.MetaCardNumber]
	if !ok {
		return out, nil
	}

	fp, err := utils.FingerprintCard(c.fingerprintKey, card)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint card: %w", err)
	}
	delete(out, models.MetaCardNumber)
	out[MetaCardMasked] = utils.MaskCardNumber(card)
	out[MetaCardFingerprint] = fp
	return out, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid record time %q: %w", s, err)
	}
	return t, nil
}
