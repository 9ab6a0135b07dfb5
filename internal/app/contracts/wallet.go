package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type WalletUsecase interface {
	TopUp(ctx context.Context, staffID string, request *requests.TopUpWallet) (*responses.TopUpWallet, error)
	GetBalance(ctx context.Context, staffID string) (*responses.WalletBalance, error)
}
