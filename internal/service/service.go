package service

import (
	"time"

	"github.com/GlebRadaev/kioskhub/internal/handlers/auth"
	"github.com/GlebRadaev/kioskhub/internal/handlers/kiosks"
	"github.com/GlebRadaev/kioskhub/internal/handlers/sessions"
	"github.com/GlebRadaev/kioskhub/internal/handlers/withdrawals"

	pkgauth "github.com/GlebRadaev/kioskhub/pkg/auth"

	"github.com/GlebRadaev/kioskhub/internal/repo"
	authservice "github.com/GlebRadaev/kioskhub/internal/service/authservice"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
	"github.com/GlebRadaev/kioskhub/internal/service/payment"
	"github.com/GlebRadaev/kioskhub/internal/service/workflow"
)

type Services struct {
	AuthService       auth.Service
	KioskService      kiosks.Service
	SessionService    sessions.Service
	WithdrawalService withdrawals.Service
	TokenValidator    pkgauth.TokenValidator

	Gateway  *gateway.Service
	Workflow *workflow.Service
}

// Options carries the optional collaborators. Cache and Publisher must be
// left nil (not typed nil) when Redis or RabbitMQ are not configured.
type Options struct {
	JWTSecret string
	HashCost  int
	Cache     gateway.KioskCache
	Publisher payment.Publisher
	FailOpen  bool
	MockDelay time.Duration
}

func New(repo *repo.Repositories, opts Options) *Services {
	jwtService := pkgauth.NewJWTService(opts.JWTSecret)
	gatewayService := gateway.New(repo.KioskRepo, repo.ChargerRepo, repo.WithdrawalRepo, opts.Cache)
	paymentService := payment.New(opts.Publisher)
	workflowService := workflow.New(gatewayService, paymentService, opts.FailOpen, opts.MockDelay)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{Cost: opts.HashCost}, jwtService)

	return &Services{
		AuthService:       authService,
		KioskService:      gatewayService,
		SessionService:    workflowService,
		WithdrawalService: gatewayService,
		TokenValidator:    jwtService,
		Gateway:           gatewayService,
		Workflow:          workflowService,
	}
}
