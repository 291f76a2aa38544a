// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// CatalogCachePrefix keys cached catalog records (rooms, hotels).
const CatalogCachePrefix = "catalog:"

// CatalogCacheTTL bounds how long a cached catalog record may lag behind an
// admin edit that raced past its invalidation.
const CatalogCacheTTL = 10 * time.Minute

// PaymentSessionPrefix keys a payment session by its token.
const PaymentSessionPrefix = "paysession:"

// CustomerSessionPrefix keys the single active session per customer.
const CustomerSessionPrefix = "paysession:customer:"

// PaymentSessionTTL bounds how long an unconsumed payment session survives.
// A lost session is harmless: the booking stays Pending/unpaid and an admin
// can still mark it paid manually.
const PaymentSessionTTL = 30 * time.Minute
