package desk_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpwire-io/deskapi/pkg/desk"
)

// fakeTickets is an in-memory TicketsClient for exercising batch
// operations without a server.
type fakeTickets struct {
	mu      sync.Mutex
	nextID  int64
	tickets map[int64]*desk.Ticket
	deleted []int64
	failure error
}

func newFakeTickets() *fakeTickets {
	return &fakeTickets{
		nextID:  100,
		tickets: make(map[int64]*desk.Ticket),
	}
}

func (f *fakeTickets) Create(_ context.Context, request *desk.TicketRequest) (*desk.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failure != nil {
		return nil, f.failure
	}

	f.nextID++
	ticket := &desk.Ticket{ID: f.nextID, Subject: request.Subject, Status: "new"}
	f.tickets[ticket.ID] = ticket

	return ticket, nil
}

func (f *fakeTickets) Get(_ context.Context, id int64) (*desk.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ticket, ok := f.tickets[id]
	if !ok {
		return nil, desk.ParseAPIError(404, nil)
	}

	return ticket, nil
}

func (f *fakeTickets) List(_ context.Context, _ *desk.QueryParams) (*desk.ListResponse[desk.Ticket], error) {
	return &desk.ListResponse[desk.Ticket]{}, nil
}

func (f *fakeTickets) ListAll(_ context.Context, _ *desk.QueryParams) ([]desk.Ticket, error) {
	return nil, nil
}

func (f *fakeTickets) Update(_ context.Context, id int64, request *desk.TicketRequest) (*desk.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ticket, ok := f.tickets[id]
	if !ok {
		return nil, desk.ParseAPIError(404, nil)
	}

	if request.Status != "" {
		ticket.Status = request.Status
	}

	return ticket, nil
}

func (f *fakeTickets) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, id)
	delete(f.tickets, id)

	return nil
}

type fakeClient struct {
	tickets *fakeTickets
}

func (c *fakeClient) Tags() desk.TagsClient                 { return nil }
func (c *fakeClient) TicketFields() desk.TicketFieldsClient { return nil }
func (c *fakeClient) Tickets() desk.TicketsClient           { return c.tickets }
func (c *fakeClient) NPS() desk.NPSClient                   { return nil }
func (c *fakeClient) Voice() desk.VoiceClient               { return nil }

func TestBatchExecutor_Execute(t *testing.T) {
	tickets := newFakeTickets()
	executor := desk.NewBatchExecutor(&fakeClient{tickets: tickets}, 4)

	operations := desk.NewBatchBuilder().
		AddCreateTicket("op1", &desk.TicketRequest{Subject: "first"}).
		AddCreateTicket("op2", &desk.TicketRequest{Subject: "second"}).
		Build()

	results, err := executor.Execute(context.Background(), operations)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, result := range results {
		assert.True(t, result.Success)
		require.NoError(t, result.Error)
		assert.IsType(t, &desk.Ticket{}, result.Data)
		assert.Positive(t, result.Duration)
	}
}

func TestBatchExecutor_ResultsKeepOperationOrder(t *testing.T) {
	tickets := newFakeTickets()
	executor := desk.NewBatchExecutor(&fakeClient{tickets: tickets}, 2)

	builder := desk.NewBatchBuilder()
	for _, id := range []string{"a", "b", "c", "d"} {
		builder.AddCreateTicket(id, &desk.TicketRequest{Subject: id})
	}

	results, err := executor.Execute(context.Background(), builder.Build())
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, id := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, id, results[i].ID)
	}
}

func TestBatchExecutor_Callback(t *testing.T) {
	tickets := newFakeTickets()
	executor := desk.NewBatchExecutor(&fakeClient{tickets: tickets}, 1)

	var callbacks int32

	operations := []desk.BatchOperation{{
		ID:       "op1",
		Type:     "create",
		Resource: "ticket",
		Data:     &desk.TicketRequest{Subject: "first"},
		Callback: func(result *desk.BatchResult) {
			atomic.AddInt32(&callbacks, 1)
			assert.True(t, result.Success)
		},
	}}

	_, err := executor.Execute(context.Background(), operations)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&callbacks))
}

func TestBatchExecutor_InvalidData(t *testing.T) {
	executor := desk.NewBatchExecutor(&fakeClient{tickets: newFakeTickets()}, 1)

	operations := []desk.BatchOperation{{
		ID:       "op1",
		Type:     "create",
		Resource: "ticket",
		Data:     "not a ticket request",
	}}

	results, err := executor.Execute(context.Background(), operations)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Error, desk.ErrInvalidDataTypeTicket)
}

func TestBatchExecutor_UnsupportedResource(t *testing.T) {
	executor := desk.NewBatchExecutor(&fakeClient{tickets: newFakeTickets()}, 1)

	operations := []desk.BatchOperation{{
		ID:       "op1",
		Type:     "create",
		Resource: "organization",
	}}

	results, err := executor.Execute(context.Background(), operations)
	require.NoError(t, err)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Error, desk.ErrUnsupportedResourceType)
}

func TestBatchExecutor_UnsupportedOperation(t *testing.T) {
	executor := desk.NewBatchExecutor(&fakeClient{tickets: newFakeTickets()}, 1)

	operations := []desk.BatchOperation{{
		ID:       "op1",
		Type:     "merge",
		Resource: "ticket",
	}}

	results, err := executor.Execute(context.Background(), operations)
	require.NoError(t, err)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Error, desk.ErrUnsupportedOperationType)
}

func TestBatchTransaction_RollsBackCreatesOnFailure(t *testing.T) {
	tickets := newFakeTickets()
	executor := desk.NewBatchExecutor(&fakeClient{tickets: tickets}, 1)

	transaction := desk.NewBatchTransaction(executor)
	transaction.Add(desk.BatchOperation{
		ID:       "create",
		Type:     "create",
		Resource: "ticket",
		Data:     &desk.TicketRequest{Subject: "keepme"},
	})
	transaction.Add(desk.BatchOperation{
		ID:       "bad",
		Type:     "create",
		Resource: "ticket",
		Data:     "not a request",
	})

	results, err := transaction.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, desk.ErrTransactionFailed)
	require.Len(t, results, 2)

	// The successful create was rolled back
	require.Len(t, tickets.deleted, 1)
	assert.Empty(t, tickets.tickets)
}

func TestBatchTransaction_NoRollbackWhenDisabled(t *testing.T) {
	tickets := newFakeTickets()
	executor := desk.NewBatchExecutor(&fakeClient{tickets: tickets}, 1)

	transaction := desk.NewBatchTransaction(executor).SetRollback(false)
	transaction.Add(desk.BatchOperation{
		ID:       "create",
		Type:     "create",
		Resource: "ticket",
		Data:     &desk.TicketRequest{Subject: "keepme"},
	})
	transaction.Add(desk.BatchOperation{
		ID:       "bad",
		Type:     "create",
		Resource: "ticket",
		Data:     "not a request",
	})

	_, err := transaction.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets.deleted)
	assert.Len(t, tickets.tickets, 1)
}

func TestBatchExecutor_CreateFailurePropagates(t *testing.T) {
	tickets := newFakeTickets()
	tickets.failure = errors.New("quota exceeded")
	executor := desk.NewBatchExecutor(&fakeClient{tickets: tickets}, 1)

	operations := desk.NewBatchBuilder().
		AddCreateTicket("op1", &desk.TicketRequest{Subject: "first"}).
		Build()

	results, err := executor.Execute(context.Background(), operations)
	require.NoError(t, err)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Error, tickets.failure)
}
