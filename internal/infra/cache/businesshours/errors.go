package businesshours

import "errors"

var (
	// ErrCacheMiss возвращается, когда в кэше нет записи для салона
	ErrCacheMiss = errors.New("businesshours.cache: cache miss")

	// ErrStaleVersion возвращается, когда запись устарела: салон был инвалидирован после снятия версии
	ErrStaleVersion = errors.New("businesshours.cache: stale version")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("businesshours.cache: redis error")

	// ErrEncode возвращается при ошибке (де)сериализации значения
	ErrEncode = errors.New("businesshours.cache: encode error")
)
