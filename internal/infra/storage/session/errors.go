package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrSessionExists возвращается при повторном создании сессии с тем же ID
	ErrSessionExists = errors.New("session.repository: session already exists")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("session.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")

	// ErrEncodeState возвращается, когда состояние черновика не удалось (де)сериализовать
	ErrEncodeState = errors.New("session.repository: failed to encode draft state")
)
