package entity

// El motor de reportes lee solicitudes y órdenes de compra ya unidas con su
// proyecto y proveedor (filas planas del contrato de repositorio); aquí solo
// viven los estados, que son parte del modelo de dominio.

// Estados posibles de una solicitud de compra (PR).
const (
	PurchaseRequestStatusPending   = "pending"
	PurchaseRequestStatusApproved  = "approved"
	PurchaseRequestStatusRejected  = "rejected"
	PurchaseRequestStatusCancelled = "cancelled"
)

// Estados posibles de una orden de compra (PO).
const (
	PurchaseOrderStatusIssued    = "issued"
	PurchaseOrderStatusReceived  = "received"
	PurchaseOrderStatusCancelled = "cancelled"
)
