package handler

import (
	"shipment_erp/internal/app/handler/api"
	"shipment_erp/internal/app/handler/middleware"
	"shipment_erp/internal/app/importer"
	"shipment_erp/internal/app/notify"
	"shipment_erp/internal/app/repository"
	"shipment_erp/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the process-lifetime collaborators the handlers are built from.
type Deps struct {
	Store       repository.Store
	Shipments   *service.ShipmentService
	Parts       *service.PartReconciler
	Reports     *service.ReportService
	Enquiries   *service.EnquiryNumbers
	Importer    *importer.Importer
	Mailer      notify.Mailer
	UploadDir   string
	CorsOrigins string
	Database    string
}

type Handler struct {
	ShipmentAPIHandler *api.ShipmentHandler
	PartAPIHandler     *api.PartHandler
	ReportAPIHandler   *api.ReportHandler
	SystemAPIHandler   *api.SystemHandler
	corsOrigins        string
}

func NewHandler(deps Deps) *Handler {
	mailer := deps.Mailer
	if mailer == nil {
		mailer = notify.Disabled{}
	}
	return &Handler{
		ShipmentAPIHandler: &api.ShipmentHandler{
			Service:   deps.Shipments,
			Importer:  deps.Importer,
			Mailer:    mailer,
			UploadDir: deps.UploadDir,
		},
		PartAPIHandler:   &api.PartHandler{Parts: deps.Parts},
		ReportAPIHandler: &api.ReportHandler{Reports: deps.Reports},
		SystemAPIHandler: &api.SystemHandler{
			Store:     deps.Store,
			Enquiries: deps.Enquiries,
			Database:  deps.Database,
		},
		corsOrigins: deps.CorsOrigins,
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestLogger(), middleware.CORS(h.corsOrigins))

	router.GET("/swagger/*any", func(c *gin.Context) {
		logrus.Debugf("Serving Swagger UI for path: %s", c.Request.URL.Path)
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	// API маршруты
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/test", h.SystemAPIHandler.TestAPI)
		apiGroup.GET("/db-test", h.SystemAPIHandler.DBTestAPI)
		apiGroup.GET("/enquiry-number", h.SystemAPIHandler.EnquiryNumberAPI)

		// Домен отгрузок
		apiGroup.GET("/shipments", h.ShipmentAPIHandler.GetShipmentsAPI)
		apiGroup.POST("/shipments", h.ShipmentAPIHandler.CreateShipmentAPI)
		apiGroup.GET("/shipments/dashboard/summary", h.ShipmentAPIHandler.DashboardSummaryAPI)
		apiGroup.POST("/shipments/bulk-upload", h.ShipmentAPIHandler.BulkUploadAPI)
		apiGroup.POST("/shipments/send-mail", h.ShipmentAPIHandler.SendTrackingMailAPI)
		apiGroup.POST("/shipments/send-email", h.ShipmentAPIHandler.SendEmailAPI)
		apiGroup.GET("/shipments/:id", h.ShipmentAPIHandler.GetShipmentAPI)
		apiGroup.PUT("/shipments/:id", h.ShipmentAPIHandler.UpdateShipmentAPI)
		apiGroup.PATCH("/shipments/:id/status", h.ShipmentAPIHandler.SetStatusAPI)
		apiGroup.PATCH("/shipments/:id/delivery-status", h.ShipmentAPIHandler.SetDeliveryStatusAPI)
		apiGroup.PUT("/shipments/:id/manual-desc", h.ShipmentAPIHandler.SetManualDescAPI)

		// Справочник деталей
		apiGroup.GET("/parts/:partNo", h.PartAPIHandler.GetPartAPI)
		apiGroup.POST("/parts", h.PartAPIHandler.CreatePartAPI)

		// Отчёты
		apiGroup.GET("/reports/export/monthly/csv", h.ReportAPIHandler.MonthlyCSVAPI)
	}
}
