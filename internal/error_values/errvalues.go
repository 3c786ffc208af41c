package errorvalues

import "errors"

var (
	ErrTaskNotFound         = errors.New("task doesn't exist")
	ErrSubtaskNotFound      = errors.New("subtask doesn't exist")
	ErrTransactionNotFound  = errors.New("transaction doesn't exist")
	ErrJournalEntryNotFound = errors.New("journal entry doesn't exist")
	ErrBrainDumpNotFound    = errors.New("brain dump doesn't exist")
	ErrBlobNotFound         = errors.New("blob doesn't exist")

	ErrValidation           = errors.New("validation error")
	ErrConfirmationRequired = errors.New("destructive action requires confirmation")

	ErrEmptyBrainDump     = errors.New("brain dump is empty")
	ErrOrganizeInProgress = errors.New("organizing is already in progress")
	ErrOrganizeFailed     = errors.New("organizing did not produce results")
	ErrMissingAPIKey      = errors.New("organizer api key is not configured")
	ErrMalformedResponse  = errors.New("organizer response doesn't match schema")
)
