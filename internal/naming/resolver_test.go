package naming_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lbseries/internal/domain"
	"lbseries/internal/logger"
	"lbseries/internal/naming"
	"lbseries/mocks"
)

type fixedFiscal struct {
	code  string
	dates []time.Time
}

func (f *fixedFiscal) Code(_ context.Context, date time.Time, _ string) string {
	f.dates = append(f.dates, date)
	return f.code
}

func newResolver(t *testing.T) (*naming.Resolver, *mocks.MockSeriesRepo, *fixedFiscal) {
	t.Helper()
	registry, err := naming.NewDefaultRegistry(nil)
	require.NoError(t, err)
	series := new(mocks.MockSeriesRepo)
	fiscal := &fixedFiscal{code: "25"}
	return naming.NewResolver(registry, fiscal, series, "", logger.Discard()), series, fiscal
}

func TestResolver_Resolve_SalesInvoiceReturn(t *testing.T) {
	r, series, _ := newResolver(t)
	series.On("Next", mock.Anything, "SICRBLR125-").Return(int64(12), nil)

	doc := &domain.TransactionDocument{
		DocType:      domain.DocTypeSalesInvoice,
		IsReturn:     true,
		Company:      "Acme India",
		PostingDate:  "2025-06-01",
		LocationCode: "BLR1",
	}
	res, err := r.Resolve(context.Background(), doc, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "SICRBLR125-0012", res.Name)
	assert.Equal(t, "CR", res.DoctypeCode)
	assert.Equal(t, "25", res.FiscalCode)
	assert.Equal(t, "SICRBLR125-0012", doc.Name)
	assert.Equal(t, "CR", doc.DoctypeCode)
	series.AssertExpectations(t)
}

func TestResolver_Resolve_FallbackLocationCode(t *testing.T) {
	r, series, _ := newResolver(t)
	series.On("Next", mock.Anything, "SO000025-").Return(int64(1), nil)

	doc := &domain.TransactionDocument{DocType: domain.DocTypeSalesOrder, PostingDate: "2025-06-01"}
	res, err := r.Resolve(context.Background(), doc, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "SO000025-0001", res.Name)
}

func TestResolver_Resolve_EmptyPostingDateUsesToday(t *testing.T) {
	r, series, fiscal := newResolver(t)
	series.On("Next", mock.Anything, mock.Anything).Return(int64(1), nil)

	today := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := r.Resolve(context.Background(), &domain.TransactionDocument{DocType: domain.DocTypePurchaseOrder}, today)

	require.NoError(t, err)
	require.Len(t, fiscal.dates, 1)
	assert.Equal(t, today, fiscal.dates[0])
}

func TestResolver_Resolve_MissingTemplate(t *testing.T) {
	r, series, _ := newResolver(t)

	doc := &domain.TransactionDocument{DocType: domain.DocTypeStockEntry}
	res, err := r.Resolve(context.Background(), doc, time.Now())

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNamingTemplateMissing)
	assert.True(t, domain.IsConfigurationError(err))
	assert.Empty(t, doc.Name)
	series.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
}

func TestResolver_Resolve_InvalidPostingDate(t *testing.T) {
	r, _, _ := newResolver(t)

	doc := &domain.TransactionDocument{DocType: domain.DocTypeSalesOrder, PostingDate: "01/06/2025"}
	_, err := r.Resolve(context.Background(), doc, time.Now())

	assert.ErrorIs(t, err, domain.ErrInvalidPostingDate)
}

func TestResolver_Resolve_SeriesError(t *testing.T) {
	r, series, _ := newResolver(t)
	series.On("Next", mock.Anything, mock.Anything).Return(int64(0), errors.New("connection reset"))

	doc := &domain.TransactionDocument{DocType: domain.DocTypeSalesOrder, Name: "draft-1"}
	_, err := r.Resolve(context.Background(), doc, time.Now())

	assert.Error(t, err)
	assert.Equal(t, "draft-1", doc.Name)
}
