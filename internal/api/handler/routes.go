package handler

import (
	"net/http"

	"github.com/vfg2006/mymoney-api/infrastructure/repository"
	"github.com/vfg2006/mymoney-api/internal/api/handler/router"
	"github.com/vfg2006/mymoney-api/internal/usecases/extracting"
	"github.com/vfg2006/mymoney-api/internal/usecases/uploading"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Uploads(
	uploader uploading.Uploader,
	uploadRepo repository.UploadRepository,
	sheetRepo repository.SheetRepository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/api/upload",
			Method:  http.MethodPost,
			Handler: UploadFile(uploader),
		},
		{
			Path:    "/api/uploads",
			Method:  http.MethodGet,
			Handler: ListUploads(uploadRepo),
		},
		{
			Path:    "/api/uploads/:id",
			Method:  http.MethodGet,
			Handler: GetUpload(uploadRepo),
		},
		{
			Path:    "/api/uploads/:id/sheets",
			Method:  http.MethodGet,
			Handler: ListUploadSheets(uploadRepo, sheetRepo),
		},
		{
			Path:    "/api/uploads/:id",
			Method:  http.MethodDelete,
			Handler: DeleteUpload(uploadRepo),
		},
	}
}

func Sheets(sheetRepo repository.SheetRepository, recordRepo repository.RecordRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sheets/:id",
			Method:  http.MethodGet,
			Handler: GetSheet(sheetRepo, recordRepo),
		},
	}
}

func Extraction(
	sheetRepo repository.SheetRepository,
	customerExtractor extracting.CustomerExtractor,
	cashFlowExtractor extracting.CashFlowExtractor,
) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sheets/:id/extract/customer",
			Method:  http.MethodPost,
			Handler: ExtractCustomer(sheetRepo, customerExtractor),
		},
		{
			Path:    "/api/sheets/:id/extract/cash-flows",
			Method:  http.MethodPost,
			Handler: ExtractCashFlows(sheetRepo, cashFlowExtractor),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
