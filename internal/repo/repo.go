package repo

import (
	"github.com/GlebRadaev/kioskhub/internal/pg"
	chargerrepo "github.com/GlebRadaev/kioskhub/internal/repo/charger-repo"
	kioskrepo "github.com/GlebRadaev/kioskhub/internal/repo/kiosk-repo"
	userrepo "github.com/GlebRadaev/kioskhub/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/kioskhub/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/kioskhub/internal/service/authservice"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
)

type Repositories struct {
	UserRepo       authservice.Repo
	KioskRepo      gateway.KioskRepo
	ChargerRepo    gateway.ChargerRepo
	WithdrawalRepo gateway.WithdrawalRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	kioskRepo := kioskrepo.New(conn)
	chargerRepo := chargerrepo.New(conn, txManager)
	withdrawalRepo := withdrawalrepo.New(conn)

	return &Repositories{
		UserRepo:       userRepo,
		KioskRepo:      kioskRepo,
		ChargerRepo:    chargerRepo,
		WithdrawalRepo: withdrawalRepo,
	}
}
