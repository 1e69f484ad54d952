// Package legacy converts exported snapshots from the previous back-office
// into the canonical auction aggregate. The old schema went through two
// revisions: the winning bidder was first a singular "arrematante" field and
// later a plural "arrematantes" array keyed by lot. Both shapes are accepted
// here and normalized to []models.Bidder, so nothing downstream ever sees the
// singular form.
package legacy

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-office/internal/auctionerrors"
	"auction-office/internal/models"
	"auction-office/utils"
)

const legacyDateLayout = "2006-01-02"

type snapshot struct {
	Leiloes []legacyAuction `json:"leiloes"`
}

type legacyAuction struct {
	ID               string          `json:"id"`
	Nome             string          `json:"nome"`
	Codigo           string          `json:"codigo"`
	Local            string          `json:"local"`
	Endereco         string          `json:"endereco"`
	DataInicio       string          `json:"dataInicio"`
	DataEncerramento string          `json:"dataEncerramento"`
	Status           string          `json:"status"`
	Arquivado        bool            `json:"arquivado"`
	Custos           decimal.Decimal `json:"custos"`
	HistoricoNotas   string          `json:"historicoNotas"`
	Lotes            []legacyLot     `json:"lotes"`
	Arrematante      *legacyBidder   `json:"arrematante"`
	Arrematantes     []legacyBidder  `json:"arrematantes"`
}

type legacyLot struct {
	ID                  string       `json:"id"`
	Numero              string       `json:"numero"`
	Descricao           string       `json:"descricao"`
	Mercadorias         []legacyItem `json:"mercadorias"`
	TipoPagamento       string       `json:"tipoPagamento"`
	DataVencimentoVista string       `json:"dataVencimentoVista"`
	DataEntrada         string       `json:"dataEntrada"`
	Parcelas            int          `json:"parcelas"`
	MesInicioPagamento  string       `json:"mesInicioPagamento"`
	DiaVencimentoPadrao int          `json:"diaVencimentoPadrao"`
	Imagens             []string     `json:"imagens"`
}

type legacyItem struct {
	Descricao  string `json:"descricao"`
	Quantidade int    `json:"quantidade"`
}

type legacyBidder struct {
	Nome                  string          `json:"nome"`
	Documento             string          `json:"documento"`
	Endereco              string          `json:"endereco"`
	Email                 string          `json:"email"`
	Telefone              string          `json:"telefone"`
	LoteID                string          `json:"loteId"`
	ValorPagar            decimal.Decimal `json:"valorPagar"`
	ParcelasPagas         int             `json:"parcelasPagas"`
	Pago                  bool            `json:"pago"`
	PercentualJurosAtraso decimal.Decimal `json:"percentualJurosAtraso"`
	TipoJurosAtraso       string          `json:"tipoJurosAtraso"`
}

// ParseSnapshot decodes a legacy export into canonical auction aggregates
func ParseSnapshot(data []byte) ([]models.Auction, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w: %s", auctionerrors.ErrLegacySnapshotBad, err)
	}
	out := make([]models.Auction, 0, len(snap.Leiloes))
	for _, la := range snap.Leiloes {
		a, err := convertAuction(la)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func convertAuction(la legacyAuction) (models.Auction, error) {
	if la.Nome == "" {
		return models.Auction{}, fmt.Errorf("auction %s has no name: %w", la.ID, auctionerrors.ErrLegacySnapshotBad)
	}
	a := models.Auction{
		ID:           orGenerated(la.ID),
		Name:         la.Nome,
		Code:         la.Codigo,
		LocationKind: locationKind(la.Local),
		Address:      la.Endereco,
		Status:       auctionStatus(la.Status),
		Archived:     la.Arquivado,
		CostTotal:    la.Custos,
		HistoryNotes: la.HistoricoNotas,
	}
	if t, ok := parseDate(la.DataInicio); ok {
		a.StartDate = t
	}
	if t, ok := parseDate(la.DataEncerramento); ok {
		a.EndDate = t
	}

	for _, ll := range la.Lotes {
		a.Lots = append(a.Lots, convertLot(a.ID, ll))
	}

	// Singular vs plural bidder shape: the plural array wins when both are
	// present; the singular record is attached to its referenced lot.
	bidders := la.Arrematantes
	if len(bidders) == 0 && la.Arrematante != nil {
		bidders = []legacyBidder{*la.Arrematante}
	}
	for _, lb := range bidders {
		a.Bidders = append(a.Bidders, convertBidder(a.ID, lb))
	}
	return a, nil
}

func convertLot(auctionID string, ll legacyLot) models.Lot {
	lot := models.Lot{
		ID:          orGenerated(ll.ID),
		AuctionID:   auctionID,
		Number:      ll.Numero,
		Description: ll.Descricao,
		ImageURLs:   ll.Imagens,
	}
	for _, item := range ll.Mercadorias {
		qty := item.Quantidade
		if qty <= 0 {
			qty = 1
		}
		lot.Merchandise = append(lot.Merchandise, models.Merchandise{
			ID:          utils.GenerateID(),
			LotID:       lot.ID,
			Description: item.Descricao,
			Quantity:    qty,
		})
	}
	lot.Plan = convertPlan(ll)
	return lot
}

func convertPlan(ll legacyLot) models.PaymentPlan {
	plan := models.PaymentPlan{
		InstallmentCount: ll.Parcelas,
		StartMonth:       ll.MesInicioPagamento,
		DueDayOfMonth:    ll.DiaVencimentoPadrao,
	}
	switch ll.TipoPagamento {
	case "a_vista":
		plan.Kind = models.PaymentLumpSum
		if t, ok := parseDate(ll.DataVencimentoVista); ok {
			plan.DueDate = &t
		}
	case "parcelamento":
		plan.Kind = models.PaymentInstallments
	case "entrada_parcelamento":
		plan.Kind = models.PaymentDownPaymentInstallments
		if t, ok := parseDate(ll.DataEntrada); ok {
			plan.DownPaymentDueDate = &t
		}
	default:
		// unknown or absent payment type: leave Kind empty, the schedule
		// engine skips the lot
		plan = models.PaymentPlan{}
	}
	return plan
}

func convertBidder(auctionID string, lb legacyBidder) models.Bidder {
	mode := models.InterestSimple
	if lb.TipoJurosAtraso == "composto" {
		mode = models.InterestCompound
	}
	return models.Bidder{
		ID:                  utils.GenerateID(),
		AuctionID:           auctionID,
		LotID:               lb.LoteID,
		Name:                lb.Nome,
		Document:            lb.Documento,
		Address:             lb.Endereco,
		Email:               lb.Email,
		Phone:               lb.Telefone,
		TotalDue:            lb.ValorPagar,
		InstallmentsPaid:    lb.ParcelasPagas,
		FullyPaid:           lb.Pago,
		LateInterestPercent: lb.PercentualJurosAtraso,
		LateInterestMode:    mode,
	}
}

func locationKind(local string) string {
	switch local {
	case "presencial":
		return models.LocationPhysical
	case "online":
		return models.LocationOnline
	case "hibrido":
		return models.LocationHybrid
	default:
		return local
	}
}

func auctionStatus(status string) string {
	switch status {
	case "agendado", "":
		return models.AuctionStatusScheduled
	case "em_andamento":
		return models.AuctionStatusInProgress
	case "finalizado":
		return models.AuctionStatusFinished
	default:
		return status
	}
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(legacyDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func orGenerated(id string) string {
	if id != "" {
		return id
	}
	return utils.GenerateID()
}
