package handlers

import (
	"go.uber.org/zap"

	"github.com/fadhlanhapp/tokocalc-backend/config"
	"github.com/fadhlanhapp/tokocalc-backend/repository"
	"github.com/fadhlanhapp/tokocalc-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	CartService        *services.CartService
	GradeService       *services.GradeService
	RankingService     *services.RankingService
	ProductFormService *services.ProductFormService
	SalesService       *services.SalesService
	ExcelService       *services.ExcelService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices(rules config.Rules) *HandlerServices {
	return &HandlerServices{
		CartService:        services.NewCartService(rules.Discount),
		GradeService:       services.NewGradeService(rules.Grades),
		RankingService:     services.NewRankingService(repository.NewProductRepository()),
		ProductFormService: services.NewProductFormService(rules.Categories),
		SalesService:       services.NewSalesService(repository.NewSalesRepository()),
		ExcelService:       services.NewExcelService(),
	}
}

var (
	handlerServices *HandlerServices
	logger          = zap.NewNop()
)

// InitHandlers initializes the handler services
func InitHandlers(svc *HandlerServices, log *zap.Logger) {
	handlerServices = svc
	if log != nil {
		logger = log
	}
}
