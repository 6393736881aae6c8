package storage

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// Коды PostgreSQL, означающие, что схема еще не создана или БД недоступна
const (
	codeUndefinedTable     = "42P01"
	codeInvalidSchemaName  = "3F000"
	codeInvalidCatalogName = "3D000"
	codeCannotConnectNow   = "57P03"
	classConnection        = "08"
)

// Коды PostgreSQL для конфликтов конкурентной записи
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsUnavailable проверяет, что ошибка означает недоступное или пустое хранилище:
// нет соединения, нет таблиц, нет базы.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, domain.ErrStorageUnavailable) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUndefinedTable, codeInvalidSchemaName, codeInvalidCatalogName, codeCannotConnectNow:
			return true
		}
		return pqErr.Code.Class() == classConnection
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, syscall.ECONNREFUSED)
}

// IsWriteConflict проверяет, что запись не прошла из-за конкурентной транзакции
func IsWriteConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case codeUniqueViolation, codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}

// Wrap оборачивает ошибку драйвера в sentinel репозитория.
// Ошибки недоступности дополнительно помечаются domain.ErrStorageUnavailable.
func Wrap(sentinel error, op string, err error) error {
	if IsUnavailable(err) {
		return fmt.Errorf("%w: %w: %s: %v", domain.ErrStorageUnavailable, sentinel, op, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, op, err)
}
