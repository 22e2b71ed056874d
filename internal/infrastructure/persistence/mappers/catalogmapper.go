package mappers

import (
	"github.com/merojugx/mero/internal/domain/app"
	"github.com/merojugx/mero/internal/domain/payment"
	"github.com/merojugx/mero/internal/domain/upload"
	"github.com/merojugx/mero/internal/domain/warehouse"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
)

func AppToModel(a *app.App) *models.AppModel {
	return &models.AppModel{
		ID:            a.ID(),
		Name:          a.Name(),
		Slug:          a.Slug(),
		Description:   a.Description(),
		Price:         a.Price(),
		BillingPeriod: string(a.BillingPeriod()),
		Status:        string(a.Status()),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func AppToDomain(m *models.AppModel) *app.App {
	return app.ReconstructApp(
		m.ID,
		m.Name,
		m.Slug,
		m.Description,
		m.Price,
		app.BillingPeriod(m.BillingPeriod),
		app.Status(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func AppAccessToModel(a *app.Access) *models.OrganizationAppAccessModel {
	return &models.OrganizationAppAccessModel{
		ID:             a.ID(),
		OrganizationID: a.OrganizationID(),
		UserID:         a.UserID(),
		AppID:          a.AppID(),
		RoleID:         a.RoleID(),
		GrantedBy:      a.GrantedBy(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}

func AppAccessToDomain(m *models.OrganizationAppAccessModel) *app.Access {
	return app.ReconstructAccess(m.ID, m.OrganizationID, m.UserID, m.AppID, m.RoleID, m.GrantedBy, m.CreatedAt, m.UpdatedAt)
}

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:               p.ID(),
		OrganizationID:   p.OrganizationID(),
		Gateway:          string(p.Gateway()),
		Status:           string(p.Status()),
		Amount:           p.Amount(),
		Currency:         p.Currency(),
		GatewaySessionID: p.GatewaySessionID(),
		Description:      p.Description(),
		CompletedAt:      p.CompletedAt(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

func PaymentToDomain(m *models.PaymentModel) *payment.Payment {
	return payment.ReconstructPayment(
		m.ID,
		m.OrganizationID,
		payment.Gateway(m.Gateway),
		payment.Status(m.Status),
		m.Amount,
		m.Currency,
		m.GatewaySessionID,
		m.Description,
		m.CompletedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func FileUploadToModel(f *upload.FileUpload) *models.FileUploadModel {
	return &models.FileUploadModel{
		ID:             f.ID(),
		UploadedBy:     f.UploadedBy(),
		OrganizationID: f.OrganizationID(),
		Name:           f.Name(),
		MimeType:       f.MimeType(),
		Size:           f.Size(),
		ThumbnailURL:   f.ThumbnailURL(),
		CreatedAt:      f.CreatedAt(),
	}
}

func FileUploadToDomain(m *models.FileUploadModel) *upload.FileUpload {
	return upload.ReconstructFileUpload(m.ID, m.UploadedBy, m.OrganizationID, m.Name, m.MimeType, m.Size, m.ThumbnailURL, m.CreatedAt)
}

func WarehouseToModel(w *warehouse.Warehouse) *models.WarehouseModel {
	return &models.WarehouseModel{
		ID:             w.ID(),
		OrganizationID: w.OrganizationID(),
		Name:           w.Name(),
		Code:           w.Code(),
		Address:        w.Address(),
		Type:           string(w.Type()),
		IsActive:       w.IsActive(),
		CreatedAt:      w.CreatedAt(),
		UpdatedAt:      w.UpdatedAt(),
	}
}

func WarehouseToDomain(m *models.WarehouseModel) *warehouse.Warehouse {
	return warehouse.ReconstructWarehouse(
		m.ID,
		m.OrganizationID,
		m.Name,
		m.Code,
		m.Address,
		warehouse.Type(m.Type),
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
