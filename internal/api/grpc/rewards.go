package grpc

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative rewards.proto

import (
	context "context"
	"crypto/subtle"
	"time"

	services "github.com/glkeru/rewards/internal/services"
	"go.uber.org/zap"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	status "google.golang.org/grpc/status"
)

// Метаданные с общим секретом внутренних вызовов
const InternalTokenKey = "x-internal-token"

// Баланс и история выплат для внутренних сервисов платформы
type RewardsService struct {
	dashboard *services.DashboardService
	logger    *zap.Logger
	UnimplementedRewardsServer
}

func NewRewardsService(dashboard *services.DashboardService, logger *zap.Logger) *RewardsService {
	return &RewardsService{dashboard, logger, UnimplementedRewardsServer{}}
}

// Сервер с проверкой внутреннего токена
func NewServer(service *RewardsService, token string) *grpc.Server {
	server := grpc.NewServer(grpc.UnaryInterceptor(InternalToken(token)))
	RegisterRewardsServer(server, service)
	return server
}

func InternalToken(token string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		got := md.Get(InternalTokenKey)
		if len(got) != 1 || subtle.ConstantTimeCompare([]byte(got[0]), []byte(token)) != 1 {
			return nil, status.Error(codes.Unauthenticated, "not authorized")
		}
		return handler(ctx, req)
	}
}

// Баланс
func (r *RewardsService) GetBalance(ctx context.Context, in *BalanceRequest) (*BalanceResponse, error) {
	if in.User == "" {
		return nil, status.Error(codes.InvalidArgument, "user is empty")
	}
	balance, err := r.dashboard.Balance(ctx, in.User)
	if err != nil {
		r.logger.Error("GetBalance", zap.Error(err), zap.String("user", in.User))
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &BalanceResponse{
		User:              in.User,
		TotalTokens:       balance.TotalTokens,
		AvailableTokens:   balance.AvailableTokens,
		CashedOutTokens:   balance.CashedOutTokens,
		TotalEarnings:     balance.TotalEarnings.String(),
		AvailableEarnings: balance.AvailableEarnings.String(),
	}, nil
}

// История выплат
func (r *RewardsService) GetHistory(ctx context.Context, in *HistoryRequest) (*HistoryResponse, error) {
	if in.User == "" {
		return nil, status.Error(codes.InvalidArgument, "user is empty")
	}
	history, err := r.dashboard.History(ctx, in.User)
	if err != nil {
		r.logger.Error("GetHistory", zap.Error(err), zap.String("user", in.User))
		return nil, status.Error(codes.Internal, "internal error")
	}
	resp := make([]*Payment, len(history))
	for i, v := range history {
		resp[i] = &Payment{
			Id:            v.ID.String(),
			TransactionId: v.TransactionID,
			Tokens:        v.Tokens,
			Amount:        v.Amount.String(),
			Status:        string(v.Status),
			CreatedAt:     v.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     v.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &HistoryResponse{Payments: resp}, nil
}
