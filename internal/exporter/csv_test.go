package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
	"github.com/mihalio25/yandex-market-partner-api/internal/updater"
)

func TestWriteProductsCSV(t *testing.T) {
	t.Parallel()

	rows := []ProductRow{
		{
			SKU:        "SKU-1",
			Name:       "Лампа настольная",
			Vendor:     "Свет",
			Category:   "Освещение",
			Price:      1234.5,
			Currency:   "RUR",
			CardStatus: "PUBLISHED",
			Issues:     "низкое разрешение",
		},
		{SKU: "SKU-2", Name: "Стол"},
	}

	var buf bytes.Buffer
	err := WriteProductsCSV(&buf, rows)

	assert.NoError(t, err)
	assert.Equal(t,
		"sku,name,vendor,category,price,currency,card_status,issues\n"+
			"SKU-1,Лампа настольная,Свет,Освещение,1234.50,RUR,PUBLISHED,низкое разрешение\n"+
			"SKU-2,Стол,,,0.00,,,\n",
		buf.String(),
	)
}

func TestWriteOrdersCSV(t *testing.T) {
	t.Parallel()

	rows := []OrderRow{
		{
			ID:            1001,
			Created:       "01-05-2024 10:00:00",
			Status:        model.OrderStatusProcessing,
			Substatus:     "STARTED",
			PaymentType:   model.PaymentTypePostpaid,
			PaymentMethod: model.PaymentYandex,
			Total:         500,
			Currency:      "RUR",
			Items:         2,
			Buyer:         "Иванов Иван",
			Region:        "Москва",
		},
	}

	var buf bytes.Buffer
	err := WriteOrdersCSV(&buf, rows)

	assert.NoError(t, err)
	assert.Equal(t,
		"id,created,status,substatus,payment_type,payment_method,total,currency,items,buyer,region\n"+
			"1001,01-05-2024 10:00:00,PROCESSING,STARTED,POSTPAID,YANDEX,500.00,RUR,2,Иванов Иван,Москва\n",
		buf.String(),
	)
}

func TestWriteChangesCSV(t *testing.T) {
	t.Parallel()

	changes := []updater.Change{
		{
			SKU:      "SKU-1",
			Name:     "Лампа",
			OldPrice: 100,
			NewPrice: 110,
			Reason:   "+10.0% -> 110.00",
			Status:   updater.ChangeUpdated,
		},
		{SKU: "SKU-2", Name: "Стол", Reason: "no base price", Status: updater.ChangeSkipped},
	}

	var buf bytes.Buffer
	err := WriteChangesCSV(&buf, changes)

	assert.NoError(t, err)
	assert.Equal(t,
		"sku,name,old_price,new_price,reason,status\n"+
			"SKU-1,Лампа,100.00,110.00,+10.0% -> 110.00,updated\n"+
			"SKU-2,Стол,0.00,0.00,no base price,skipped\n",
		buf.String(),
	)
}

func TestWriteStockChangesCSV(t *testing.T) {
	t.Parallel()

	changes := []updater.StockChange{
		{SKU: "SKU-1", WarehouseID: 5, OldCount: 10, NewCount: 7, Status: updater.ChangeUpdated},
	}

	var buf bytes.Buffer
	err := WriteStockChangesCSV(&buf, changes)

	assert.NoError(t, err)
	assert.Equal(t,
		"sku,warehouse_id,old_count,new_count,status\n"+
			"SKU-1,5,10,7,updated\n",
		buf.String(),
	)
}
