package http

import (
	"strconv"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/assembly"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/warehouse"
)

// Error is the uniform error body: {"error": "<message>"}.
type Error struct {
	Error string `json:"error"`
}

// Message is the body of operations that only acknowledge, such as DELETE.
type Message struct {
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /commandes. clientId and companyId
// are mutually exclusive; price is optional and sent as a string.
type CreateOrderRequest struct {
	ClientID     *string `json:"clientId"`
	CompanyID    *string `json:"companyId"`
	Model        string  `json:"model"`
	Color        string  `json:"color"`
	Engine       string  `json:"engine"`
	Transmission string  `json:"transmission"`
	Doors        int     `json:"doors"`
	DeliveryDate string  `json:"deliveryDate"`
	Price        *string `json:"price"`
}

// OrderResponse is the wire representation of a commande. Decimal and date
// fields travel as strings.
type OrderResponse struct {
	ID               string  `json:"id"`
	ClientID         *string `json:"clientId"`
	CompanyID        *string `json:"companyId"`
	Model            string  `json:"model"`
	Color            string  `json:"color"`
	Engine           string  `json:"engine"`
	Transmission     string  `json:"transmission"`
	Doors            int     `json:"doors"`
	DeliveryDate     string  `json:"deliveryDate"`
	Price            *string `json:"price"`
	Status           string  `json:"etapeCommande"`
	Flag             string  `json:"flag"`
	CommandeGroupee  *string `json:"commandeGroupeeId"`
	ConteneurID      *string `json:"conteneurId"`
}

// GroupOrdersRequest is the body of POST /commande-groupee.
type GroupOrdersRequest struct {
	CommandeIDs    []string `json:"commandeIds"`
	ValidationDate string   `json:"validationDate"`
}

// BatchResponse is the wire representation of a commande groupée. Counts
// travel as strings, matching the dashboard contract.
type BatchResponse struct {
	ID             string          `json:"id"`
	ValidationDate string          `json:"validationDate"`
	Total          string          `json:"total"`
	Vendu          string          `json:"vendu"`
	Disponible     string          `json:"disponible"`
	Details        string          `json:"details"`
	Status         string          `json:"etapeCommandeGroupee"`
	Commandes      []OrderResponse `json:"commandes"`
}

// CreateContainerRequest is the body of POST /conteneur.
type CreateContainerRequest struct {
	ConteneurNumber string   `json:"conteneurNumber"`
	SealNumber      string   `json:"sealNumber"`
	Packages        int      `json:"packages"`
	Weight          string   `json:"weight"`
	StuffingMap     string   `json:"stuffingMap"`
	DateEmbarquement *string `json:"dateEmbarquement"`
	DateArrivee      *string `json:"dateArrivee"`
	CommandeIDs     []string `json:"commandeIds"`
}

// ContainerResponse is the wire representation of a conteneur.
type ContainerResponse struct {
	ID               string          `json:"id"`
	ConteneurNumber  string          `json:"conteneurNumber"`
	SealNumber       string          `json:"sealNumber"`
	Packages         int             `json:"packages"`
	Weight           string          `json:"weight"`
	StuffingMap      string          `json:"stuffingMap"`
	Status           string          `json:"etapeConteneur"`
	DateEmbarquement *string         `json:"dateEmbarquement"`
	DateArrivee      *string         `json:"dateArrivee"`
	Commandes        []OrderResponse `json:"commandes"`
}

// MoveOrderToTransitRequest is the body of POST /commandes/{id}/transit.
type MoveOrderToTransitRequest struct {
	ConteneurID   string `json:"conteneurId"`
	ConteneurFull bool   `json:"conteneurFull"`
}

// MoveOrderToTransitResponse pairs the loaded commande with its conteneur.
type MoveOrderToTransitResponse struct {
	Commande  OrderResponse     `json:"commande"`
	Conteneur ContainerResponse `json:"conteneur"`
}

// CreateSubcaseRequest is the body of POST /subcases.
type CreateSubcaseRequest struct {
	SubcaseNumber string `json:"subcaseNumber"`
	ConteneurID   string `json:"conteneurId"`
}

// SubcaseResponse is the wire representation of a subcase.
type SubcaseResponse struct {
	ID            string `json:"id"`
	SubcaseNumber string `json:"subcaseNumber"`
	ConteneurID   string `json:"conteneurId"`
}

// AddToolRequest is the body of POST /subcases/{id}/tools.
type AddToolRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ToolResponse is the wire representation of a tool line.
type ToolResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	SubcaseID string `json:"subcaseId"`
}

// CreateSparePartRequest is the body of POST /spare-parts.
type CreateSparePartRequest struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	NameFr    string  `json:"nameFr"`
	Quantity  int     `json:"quantity"`
	SubcaseID *string `json:"subcaseId"`
}

// AssignSparePartRequest is the body of PATCH /spare-parts.
type AssignSparePartRequest struct {
	ID        string `json:"id"`
	StorageID string `json:"storageId"`
}

// SparePartResponse is the wire representation of a spare part.
type SparePartResponse struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	NameFr    string  `json:"nameFr"`
	Quantity  int     `json:"quantity"`
	Status    string  `json:"etapeSparePart"`
	SubcaseID *string `json:"subcaseId"`
	StorageID *string `json:"storageId"`
}

// CreateStorageRequest is the body of POST /storage.
type CreateStorageRequest struct {
	StorageNumber string `json:"storageNumber"`
	Porte         string `json:"porte"`
	Rayon         string `json:"rayon"`
	Etage         string `json:"etage"`
	Case          string `json:"case"`
}

// StorageResponse is the wire representation of a storage slot.
type StorageResponse struct {
	ID            string `json:"id"`
	StorageNumber string `json:"storageNumber"`
	Porte         string `json:"porte"`
	Rayon         string `json:"rayon"`
	Etage         string `json:"etage"`
	Case          string `json:"case"`
}

// CreateMontageRequest is the body of POST /montage.
type CreateMontageRequest struct {
	CommandeID string `json:"commandeId"`
	ChassisNo  string `json:"no_chassis"`
}

// UpdateMontageRequest is the body of PATCH /montage/{id}.
type UpdateMontageRequest struct {
	EtapeMontage string `json:"etapeMontage"`
}

// MontageResponse is the wire representation of a montage.
type MontageResponse struct {
	ID         string `json:"id"`
	ChassisNo  string `json:"no_chassis"`
	CommandeID string `json:"commandeId"`
	Status     string `json:"etapeMontage"`
}

// UpdateMontageResponse pairs the updated montage with the cascaded
// commande.
type UpdateMontageResponse struct {
	Montage  MontageResponse `json:"montage"`
	Commande OrderResponse   `json:"commande"`
}

// NotifyCommercialsRequest is the body of POST /notify-commercials.
type NotifyCommercialsRequest struct {
	CommandeGroupeeID string   `json:"commandeGroupeeId"`
	Models            []string `json:"models"`
}

// RecipientResponse is one would-be notification recipient.
type RecipientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NotifyCommercialsResponse lists the commercial staff the notification
// would reach. No actual delivery happens.
type NotifyCommercialsResponse struct {
	Recipients []RecipientResponse `json:"recipients"`
}

func uuidRefToWire(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func timeRefToWire(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func orderToWire(o *order.Order) OrderResponse {
	var price *string
	if p := o.Price(); p != nil {
		s := p.String()
		price = &s
	}

	return OrderResponse{
		ID:              o.ID().String(),
		ClientID:        uuidRefToWire(o.Client()),
		CompanyID:       uuidRefToWire(o.Company()),
		Model:           o.Spec().Model(),
		Color:           o.Spec().Color(),
		Engine:          o.Spec().Engine(),
		Transmission:    o.Spec().Transmission(),
		Doors:           o.Spec().Doors(),
		DeliveryDate:    o.DeliveryDate().Format(time.RFC3339),
		Price:           price,
		Status:          o.Status().String(),
		Flag:            o.Flag().String(),
		CommandeGroupee: uuidRefToWire(o.Batch()),
		ConteneurID:     uuidRefToWire(o.Container()),
	}
}

func ordersToWire(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = orderToWire(o)
	}
	return out
}

func batchToWire(b *batch.Batch, orders []*order.Order) BatchResponse {
	return BatchResponse{
		ID:             b.ID().String(),
		ValidationDate: b.ValidationDate().Format(time.RFC3339),
		Total:          strconv.Itoa(b.TotalCount()),
		Vendu:          strconv.Itoa(b.SoldCount()),
		Disponible:     strconv.Itoa(b.AvailableCount()),
		Details:        b.Details(),
		Status:         b.Status().String(),
		Commandes:      ordersToWire(orders),
	}
}

func containerToWire(c *container.Container, orders []*order.Order) ContainerResponse {
	return ContainerResponse{
		ID:               c.ID().String(),
		ConteneurNumber:  c.Number(),
		SealNumber:       c.SealNumber(),
		Packages:         c.Packages(),
		Weight:           c.Weight().String(),
		StuffingMap:      c.StuffingMap(),
		Status:           c.Status().String(),
		DateEmbarquement: timeRefToWire(c.EmbarkedAt()),
		DateArrivee:      timeRefToWire(c.ArrivedAt()),
		Commandes:        ordersToWire(orders),
	}
}

func subcaseToWire(s *container.Subcase) SubcaseResponse {
	return SubcaseResponse{
		ID:            s.ID().String(),
		SubcaseNumber: s.Number(),
		ConteneurID:   s.Container().String(),
	}
}

func toolToWire(t *container.Tool) ToolResponse {
	return ToolResponse{
		ID:        t.ID().String(),
		Code:      t.Code(),
		Name:      t.Name(),
		Quantity:  t.Quantity(),
		SubcaseID: t.Subcase().String(),
	}
}

func sparePartToWire(p *warehouse.SparePart) SparePartResponse {
	return SparePartResponse{
		ID:        p.ID().String(),
		Code:      p.Code(),
		Name:      p.Name(),
		NameFr:    p.NameFr(),
		Quantity:  p.Quantity(),
		Status:    p.Status().String(),
		SubcaseID: uuidRefToWire(p.SubcaseRef()),
		StorageID: uuidRefToWire(p.Storage()),
	}
}

func storageToWire(s *warehouse.Storage) StorageResponse {
	return StorageResponse{
		ID:            s.ID().String(),
		StorageNumber: s.Number(),
		Porte:         s.Door(),
		Rayon:         s.Rack(),
		Etage:         s.Level(),
		Case:          s.Case(),
	}
}

func montageToWire(m *assembly.Montage) MontageResponse {
	return MontageResponse{
		ID:         m.ID().String(),
		ChassisNo:  m.ChassisNo(),
		CommandeID: m.Order().String(),
		Status:     m.Status().String(),
	}
}

func batchReadToWire(b queries.GetAllBatchesQueryResponse) BatchResponse {
	commandes := make([]OrderResponse, len(b.Orders))
	for i, o := range b.Orders {
		var price *string
		if o.Price != "" {
			p := o.Price
			price = &p
		}
		commandes[i] = OrderResponse{
			ID:           o.ID.String(),
			Model:        o.Model,
			Color:        o.Color,
			Engine:       o.Engine,
			Transmission: o.Transmission,
			Doors:        o.Doors,
			DeliveryDate: o.DeliveryDate.Format(time.RFC3339),
			Price:        price,
			Status:       o.Status.String(),
			Flag:         o.Flag.String(),
		}
	}

	return BatchResponse{
		ID:             b.ID.String(),
		ValidationDate: b.ValidationDate.Format(time.RFC3339),
		Total:          strconv.Itoa(b.TotalCount),
		Vendu:          strconv.Itoa(b.SoldCount),
		Disponible:     strconv.Itoa(b.AvailableCount),
		Details:        b.Details,
		Status:         b.Status.String(),
		Commandes:      commandes,
	}
}

func containerReadToWire(c queries.GetContainersQueryResponse) ContainerResponse {
	commandes := make([]OrderResponse, len(c.Orders))
	for i, o := range c.Orders {
		commandes[i] = OrderResponse{
			ID:           o.ID.String(),
			Model:        o.Model,
			Color:        o.Color,
			Engine:       o.Engine,
			Transmission: o.Transmission,
			Doors:        o.Doors,
			DeliveryDate: o.DeliveryDate.Format(time.RFC3339),
			Status:       o.Status.String(),
			Flag:         o.Flag.String(),
		}
	}

	return ContainerResponse{
		ID:               c.ID.String(),
		ConteneurNumber:  c.Number,
		SealNumber:       c.SealNumber,
		Packages:         c.Packages,
		Weight:           c.Weight,
		StuffingMap:      c.StuffingMap,
		Status:           c.Status.String(),
		DateEmbarquement: timeRefToWire(c.EmbarkedAt),
		DateArrivee:      timeRefToWire(c.ArrivedAt),
		Commandes:        commandes,
	}
}

func vehicleReadToWire(v queries.GetClientVehiclesQueryResponse) OrderResponse {
	var price *string
	if v.Price != "" {
		p := v.Price
		price = &p
	}

	return OrderResponse{
		ID:           v.ID.String(),
		Model:        v.Model,
		Color:        v.Color,
		Engine:       v.Engine,
		Transmission: v.Transmission,
		Doors:        v.Doors,
		DeliveryDate: v.DeliveryDate.Format(time.RFC3339),
		Price:        price,
		Status:       v.Status.String(),
		Flag:         v.Flag.String(),
	}
}
