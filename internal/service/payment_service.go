package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"distrohub/internal/dto"
	"distrohub/internal/infra"
	"distrohub/internal/model"
	"distrohub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrInvalidSignature is returned when a webhook body fails HMAC verification.
var ErrInvalidSignature = errors.New("invalid webhook signature")

type PaymentService interface {
	Initialize(ctx context.Context, userID uuid.UUID, req dto.InitializePaymentRequest) (*dto.InitializePaymentResponse, error)
	Verify(ctx context.Context, userID uuid.UUID, reference string) (*dto.TransactionResponse, error)
	GetByReference(ctx context.Context, userID uuid.UUID, reference string) (*dto.TransactionResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]dto.TransactionResponse, error)
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) error
	GatewayState() string
}

type paymentService struct {
	transactions repository.TransactionRepository
	gateway      *infra.PaystackClient
	breaker      *infra.CircuitBreaker
	secretKey    string
}

func NewPaymentService(transactions repository.TransactionRepository, gateway *infra.PaystackClient, breaker *infra.CircuitBreaker, secretKey string) PaymentService {
	return &paymentService{
		transactions: transactions,
		gateway:      gateway,
		breaker:      breaker,
		secretKey:    secretKey,
	}
}

func (s *paymentService) Initialize(ctx context.Context, userID uuid.UUID, req dto.InitializePaymentRequest) (*dto.InitializePaymentResponse, error) {
	var data *infra.PaystackInitData
	err := s.breaker.Execute(func() error {
		var gwErr error
		data, gwErr = s.gateway.InitializeTransaction(ctx, req.Email, req.Amount)
		return gwErr
	})
	if err != nil {
		if errors.Is(err, infra.ErrCircuitOpen) {
			return nil, errors.New("Payment gateway temporarily unavailable, try again later")
		}
		return nil, err
	}

	reference := data.Reference
	if reference == "" {
		reference = model.NewTransactionRef()
	}

	txn := &model.Transaction{
		UserID:    userID,
		Reference: reference,
		Amount:    req.Amount,
		Status:    model.TxPending,
	}
	if err := s.transactions.Create(ctx, txn); err != nil {
		return nil, err
	}

	return &dto.InitializePaymentResponse{
		Message:          "Payment initialized",
		AuthorizationURL: data.AuthorizationURL,
		Transaction:      *transactionToResponse(txn),
	}, nil
}

// Verify asks the gateway for the authoritative status of a reference and
// reconciles the local transaction with it.
func (s *paymentService) Verify(ctx context.Context, userID uuid.UUID, reference string) (*dto.TransactionResponse, error) {
	txn, err := s.transactions.FindByReference(ctx, reference)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	if txn.UserID != userID {
		return nil, ErrUnauthorized
	}

	var data *infra.PaystackVerifyData
	err = s.breaker.Execute(func() error {
		var gwErr error
		data, gwErr = s.gateway.VerifyTransaction(ctx, reference)
		return gwErr
	})
	if err != nil {
		if errors.Is(err, infra.ErrCircuitOpen) {
			return nil, errors.New("Payment gateway temporarily unavailable, try again later")
		}
		return nil, err
	}

	if err := s.applyGatewayStatus(ctx, txn, data.Status, data.PaidAt); err != nil {
		return nil, err
	}
	return transactionToResponse(txn), nil
}

func (s *paymentService) GetByReference(ctx context.Context, userID uuid.UUID, reference string) (*dto.TransactionResponse, error) {
	txn, err := s.transactions.FindByReference(ctx, reference)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	if txn.UserID != userID {
		return nil, ErrUnauthorized
	}
	return transactionToResponse(txn), nil
}

func (s *paymentService) ListForUser(ctx context.Context, userID uuid.UUID) ([]dto.TransactionResponse, error) {
	txns, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, *transactionToResponse(&txns[i]))
	}
	return out, nil
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		PaidAt    string `json:"paid_at"`
	} `json:"data"`
}

// HandleWebhook processes a gateway event. The signature is verified against
// the raw body before anything is parsed.
func (s *paymentService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if !infra.VerifyWebhookSignature(s.secretKey, rawBody, signature) {
		return ErrInvalidSignature
	}

	var event webhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return err
	}

	switch event.Event {
	case "charge.success":
		txn, err := s.transactions.FindByReference(ctx, event.Data.Reference)
		if err != nil {
			// Unknown reference; acknowledge so the gateway stops retrying.
			log.Warn().Str("reference", event.Data.Reference).Msg("webhook for unknown transaction")
			return nil
		}
		return s.applyGatewayStatus(ctx, txn, "success", event.Data.PaidAt)
	case "charge.failed":
		txn, err := s.transactions.FindByReference(ctx, event.Data.Reference)
		if err != nil {
			return nil
		}
		return s.applyGatewayStatus(ctx, txn, "failed", "")
	default:
		log.Debug().Str("event", event.Event).Msg("ignoring webhook event")
		return nil
	}
}

// GatewayState exposes the breaker state for the health endpoint.
func (s *paymentService) GatewayState() string {
	return s.breaker.State().String()
}

func (s *paymentService) applyGatewayStatus(ctx context.Context, txn *model.Transaction, status, paidAt string) error {
	switch status {
	case "success":
		if txn.Status == model.TxSuccess {
			return nil
		}
		txn.Status = model.TxSuccess
		when := time.Now().UTC()
		if paidAt != "" {
			if parsed, err := time.Parse(time.RFC3339, paidAt); err == nil {
				when = parsed
			}
		}
		txn.PaidAt = &when
	case "failed", "abandoned":
		if txn.Status != model.TxPending {
			return nil
		}
		txn.Status = model.TxFailed
	default:
		return nil
	}
	return s.transactions.Update(ctx, txn)
}

func transactionToResponse(t *model.Transaction) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:        t.ID.String(),
		Reference: t.Reference,
		Amount:    t.Amount,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.PaidAt != nil {
		paidAt := t.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
