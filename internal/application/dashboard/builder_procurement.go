package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/obratrack-api/internal/application/dto"
	"github.com/jhoicas/obratrack-api/internal/domain/entity"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

// procurementBuilder reporte del Procurement Officer. No filtra por
// proyecto: opera globalmente por estado de PR/PO.
type procurementBuilder struct {
	repo repository.DashboardRepository
}

func (b procurementBuilder) Build(ctx context.Context, userID int64, scope ScopeContext, rep *dto.DashboardDTO) error {
	var (
		approvedPRs       []repository.PurchaseRequestRow
		purchaseOrders    []repository.PurchaseOrderRow
		pendingDeliveries int
		activeSuppliers   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if approvedPRs, err = b.repo.ListApprovedPurchaseRequests(gctx); err != nil {
			return fmt.Errorf("procurement: PRs aprobadas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if purchaseOrders, err = b.repo.ListPurchaseOrders(gctx, purchaseOrdersLimit); err != nil {
			return fmt.Errorf("procurement: órdenes de compra: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if pendingDeliveries, err = b.repo.CountPurchaseOrders(gctx, entity.PurchaseOrderStatusIssued); err != nil {
			return fmt.Errorf("procurement: entregas pendientes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if activeSuppliers, err = b.repo.CountActiveSuppliers(gctx); err != nil {
			return fmt.Errorf("procurement: proveedores activos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	prs := make([]dto.PurchaseRequestDTO, 0, len(approvedPRs))
	for _, pr := range approvedPRs {
		items := make([]dto.PurchaseRequestItemDTO, 0, len(pr.Items))
		for _, item := range pr.Items {
			items = append(items, dto.PurchaseRequestItemDTO{
				MaterialName: item.MaterialName,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
			})
		}
		prs = append(prs, dto.PurchaseRequestDTO{
			ID:           pr.ID,
			PRNumber:     pr.PRNumber,
			ProjectName:  pr.ProjectName,
			SupplierName: pr.SupplierName,
			TotalAmount:  pr.TotalAmount,
			ApprovedAt:   pr.ApprovedAt,
			Items:        items,
		})
	}

	pos := make([]dto.PurchaseOrderDTO, 0, len(purchaseOrders))
	pending := make([]dto.PendingDeliveryDTO, 0)
	for _, po := range purchaseOrders {
		pos = append(pos, dto.PurchaseOrderDTO{
			ID:                   po.ID,
			PONumber:             po.PONumber,
			PRNumber:             po.PRNumber,
			ProjectName:          po.ProjectName,
			SupplierName:         po.SupplierName,
			TotalAmount:          po.TotalAmount,
			Status:               po.Status,
			ExpectedDeliveryDate: po.ExpectedDeliveryDate,
			ReceivedDate:         po.ReceivedDate,
		})
		if po.Status == entity.PurchaseOrderStatusIssued {
			pending = append(pending, dto.PendingDeliveryDTO{
				ID:                   po.ID,
				PONumber:             po.PONumber,
				ProjectName:          po.ProjectName,
				SupplierName:         po.SupplierName,
				ExpectedDeliveryDate: po.ExpectedDeliveryDate,
			})
		}
	}

	total := SumProcurementTotals(approvedPRs)

	rep.KPIs.ApprovedPRs = intPtr(len(approvedPRs))
	rep.KPIs.PendingDeliveries = intPtr(pendingDeliveries)
	rep.KPIs.TotalProcurementExpenses = decimalPtr(total)
	rep.KPIs.ActiveSuppliers = intPtr(activeSuppliers)
	rep.ApprovedPurchaseRequests = prs
	rep.PurchaseOrders = pos
	rep.PendingDeliveriesList = pending
	return nil
}
