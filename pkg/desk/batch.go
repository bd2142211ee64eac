package desk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/helpwire-io/deskapi/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedResourceType  = errors.New("unsupported resource type")
	ErrUnsupportedOperationType = errors.New("unsupported operation type")
	ErrInvalidDataTypeTicket    = errors.New("invalid data type for ticket operation")
	ErrInvalidDataTypeField     = errors.New("invalid data type for ticket field operation")
	ErrInvalidDataTypeRecipient = errors.New("invalid data type for recipient operation")
	ErrTransactionFailed        = errors.New("transaction failed")
)

// UpdateDataWrapper wraps update data with the resource ID for consistent
// handling.
type UpdateDataWrapper[T any] struct {
	ID      int64
	Request *T
}

// RecipientOperationData carries the survey scope for recipient operations.
type RecipientOperationData struct {
	SurveyID    int64
	RecipientID int64
	Request     *RecipientRequest
}

// BatchOperation represents a single operation in a batch.
type BatchOperation struct {
	ID       string
	Type     string // "create", "update", "delete", "get"
	Resource string // "ticket", "ticket_field", "recipient"
	Data     interface{}
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// handleCrudOperation dispatches a batch operation to the matching handler.
func handleCrudOperation(
	operation BatchOperation,
	createFunc func() (interface{}, error),
	updateFunc func() (interface{}, error),
	deleteFunc func() (interface{}, error),
	getFunc func() (interface{}, error),
) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	switch operation.Type {
	case constants.OperationCreate:
		data, err := createFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	case constants.OperationUpdate:
		data, err := updateFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	case constants.OperationDelete:
		data, err := deleteFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	case constants.OperationGet:
		data, err := getFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	default:
		result.Error = fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}

	return result
}

// BatchExecutor executes batch operations with bounded concurrency.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			// Acquire semaphore
			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

// executeOperation executes a single operation.
func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{
		ID: operation.ID,
	}

	switch operation.Resource {
	case "ticket":
		result = b.executeTicketOperation(ctx, operation)
	case "ticket_field":
		result = b.executeTicketFieldOperation(ctx, operation)
	case "recipient":
		result = b.executeRecipientOperation(ctx, operation)
	default:
		result.Success = false
		result.Error = fmt.Errorf("%w: %s", ErrUnsupportedResourceType, operation.Resource)
	}

	return result
}

// executeTicketOperation handles ticket operations using the common CRUD helper.
func (b *BatchExecutor) executeTicketOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	return handleCrudOperation(operation,
		func() (interface{}, error) {
			if req, ok := operation.Data.(*TicketRequest); ok {
				return b.client.Tickets().Create(ctx, req)
			}

			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeTicket)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateDataWrapper[TicketRequest]); ok {
				return b.client.Tickets().Update(ctx, data.ID, data.Request)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeTicket)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(int64); ok {
				err := b.client.Tickets().Delete(ctx, id)
				if err != nil {
					return nil, fmt.Errorf("failed to delete ticket: %w", err)
				}

				return nil, nil
			}

			return nil, fmt.Errorf("%w delete", ErrInvalidDataTypeTicket)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(int64); ok {
				return b.client.Tickets().Get(ctx, id)
			}

			return nil, fmt.Errorf("%w get", ErrInvalidDataTypeTicket)
		},
	)
}

// executeTicketFieldOperation handles ticket field operations.
func (b *BatchExecutor) executeTicketFieldOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	return handleCrudOperation(operation,
		func() (interface{}, error) {
			if req, ok := operation.Data.(*TicketFieldRequest); ok {
				return b.client.TicketFields().Create(ctx, req)
			}

			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeField)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateDataWrapper[TicketFieldRequest]); ok {
				return b.client.TicketFields().Update(ctx, data.ID, data.Request)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeField)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(int64); ok {
				err := b.client.TicketFields().Delete(ctx, id)
				if err != nil {
					return nil, fmt.Errorf("failed to delete ticket field: %w", err)
				}

				return nil, nil
			}

			return nil, fmt.Errorf("%w delete", ErrInvalidDataTypeField)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(int64); ok {
				return b.client.TicketFields().Get(ctx, id)
			}

			return nil, fmt.Errorf("%w get", ErrInvalidDataTypeField)
		},
	)
}

// executeRecipientOperation handles survey recipient operations. Creates and
// updates need the survey scope, carried in RecipientOperationData.
func (b *BatchExecutor) executeRecipientOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	return handleCrudOperation(operation,
		func() (interface{}, error) {
			if data, ok := operation.Data.(*RecipientOperationData); ok {
				return b.client.NPS().CreateRecipient(ctx, data.SurveyID, data.Request)
			}

			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeRecipient)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*RecipientOperationData); ok {
				return b.client.NPS().UpdateRecipient(ctx, data.SurveyID, data.RecipientID, data.Request)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeRecipient)
		},
		func() (interface{}, error) {
			return nil, fmt.Errorf("%w delete", ErrInvalidDataTypeRecipient)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*RecipientOperationData); ok {
				return b.client.NPS().GetRecipient(ctx, data.SurveyID, data.RecipientID)
			}

			return nil, fmt.Errorf("%w get", ErrInvalidDataTypeRecipient)
		},
	)
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddCreateTicket adds a ticket creation operation.
func (b *BatchBuilder) AddCreateTicket(id string, request *TicketRequest) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     constants.OperationCreate,
		Resource: "ticket",
		Data:     request,
	})

	return b
}

// AddUpdateTicket adds a ticket update operation.
func (b *BatchBuilder) AddUpdateTicket(id string, ticketID int64, request *TicketRequest) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     constants.OperationUpdate,
		Resource: "ticket",
		Data: &UpdateDataWrapper[TicketRequest]{
			ID:      ticketID,
			Request: request,
		},
	})

	return b
}

// AddDeleteTicket adds a ticket deletion operation.
func (b *BatchBuilder) AddDeleteTicket(id string, ticketID int64) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     constants.OperationDelete,
		Resource: "ticket",
		Data:     ticketID,
	})

	return b
}

// AddGetTicket adds a ticket get operation.
func (b *BatchBuilder) AddGetTicket(id string, ticketID int64) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     constants.OperationGet,
		Resource: "ticket",
		Data:     ticketID,
	})

	return b
}

// AddCreateTicketField adds a ticket field creation operation.
func (b *BatchBuilder) AddCreateTicketField(id string, request *TicketFieldRequest) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     constants.OperationCreate,
		Resource: "ticket_field",
		Data:     request,
	})

	return b
}

// AddUpdateTicketField adds a ticket field update operation.
func (b *BatchBuilder) AddUpdateTicketField(id string, fieldID int64, request *TicketFieldRequest) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     constants.OperationUpdate,
		Resource: "ticket_field",
		Data: &UpdateDataWrapper[TicketFieldRequest]{
			ID:      fieldID,
			Request: request,
		},
	})

	return b
}

// AddDeleteTicketField adds a ticket field deletion operation.
func (b *BatchBuilder) AddDeleteTicketField(id string, fieldID int64) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     constants.OperationDelete,
		Resource: "ticket_field",
		Data:     fieldID,
	})

	return b
}

// AddCreateRecipient adds a survey recipient creation operation.
func (b *BatchBuilder) AddCreateRecipient(id string, surveyID int64, request *RecipientRequest) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     constants.OperationCreate,
		Resource: "recipient",
		Data: &RecipientOperationData{
			SurveyID: surveyID,
			Request:  request,
		},
	})

	return b
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}

// BatchTransaction represents a batch of operations with best-effort
// rollback of creates when any operation fails.
type BatchTransaction struct {
	operations []BatchOperation
	results    []BatchResult
	executor   *BatchExecutor
	rollback   bool
}

// NewBatchTransaction creates a new batch transaction.
func NewBatchTransaction(executor *BatchExecutor) *BatchTransaction {
	return &BatchTransaction{
		executor:   executor,
		operations: make([]BatchOperation, 0),
		rollback:   true,
	}
}

// Add adds an operation to the transaction.
func (t *BatchTransaction) Add(operation BatchOperation) *BatchTransaction {
	t.operations = append(t.operations, operation)

	return t
}

// SetRollback sets whether to rollback on failure.
func (t *BatchTransaction) SetRollback(rollback bool) *BatchTransaction {
	t.rollback = rollback

	return t
}

// Execute executes the transaction.
func (t *BatchTransaction) Execute(ctx context.Context) ([]BatchResult, error) {
	results, err := t.executor.Execute(ctx, t.operations)
	t.results = results

	var failedOps []string

	for _, result := range results {
		if !result.Success {
			failedOps = append(failedOps, result.ID)
		}
	}

	if len(failedOps) > 0 && t.rollback {
		t.performRollback(ctx)

		return results, fmt.Errorf("%w, %d operations failed: %v", ErrTransactionFailed, len(failedOps), failedOps)
	}

	return results, err
}

// performRollback deletes resources created by successful operations.
// Updates and deletes are not rolled back; the original state is gone.
func (t *BatchTransaction) performRollback(ctx context.Context) {
	var rollbackOps []BatchOperation

	for i, result := range t.results {
		original := t.operations[i]
		if !result.Success || original.Type != constants.OperationCreate {
			continue
		}

		var createdID int64

		switch data := result.Data.(type) {
		case *Ticket:
			createdID = data.ID
		case *TicketField:
			createdID = data.ID
		default:
			continue
		}

		rollbackOps = append(rollbackOps, BatchOperation{
			ID:       "rollback_" + original.ID,
			Type:     constants.OperationDelete,
			Resource: original.Resource,
			Data:     createdID,
		})
	}

	if len(rollbackOps) > 0 {
		_, _ = t.executor.Execute(ctx, rollbackOps)
	}
}
