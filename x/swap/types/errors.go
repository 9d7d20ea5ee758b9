package types

import (
	"cosmossdk.io/errors"
)

// Swap module sentinel errors
var (
	ErrExpired                  = errors.Register(ModuleName, 1, "deadline expired")
	ErrLocked                   = errors.Register(ModuleName, 2, "router is locked")
	ErrInvalidPath              = errors.Register(ModuleName, 3, "invalid swap path")
	ErrTradeNotAllowed          = errors.Register(ModuleName, 4, "trade direction not allowed")
	ErrInsufficientOutputAmount = errors.Register(ModuleName, 5, "output amount below minimum")
	ErrExcessiveInputAmount     = errors.Register(ModuleName, 6, "input amount above maximum")
	ErrInsufficientLiquidity    = errors.Register(ModuleName, 7, "insufficient liquidity")
	ErrInsufficientAAmount      = errors.Register(ModuleName, 8, "insufficient token A amount")
	ErrInsufficientBAmount      = errors.Register(ModuleName, 9, "insufficient token B amount")
	ErrPoolNotFound             = errors.Register(ModuleName, 10, "pool not found")
	ErrPoolAlreadyExists        = errors.Register(ModuleName, 11, "pool already exists")
	ErrIdenticalTokens          = errors.Register(ModuleName, 12, "identical tokens")
	ErrInvalidAmount            = errors.Register(ModuleName, 13, "invalid amount")
	ErrInvalidAddress           = errors.Register(ModuleName, 14, "invalid address")
	ErrInvalidPoolState         = errors.Register(ModuleName, 15, "invalid pool state")
	ErrInsufficientShares       = errors.Register(ModuleName, 16, "insufficient liquidity shares")
	ErrInvalidBoost             = errors.Register(ModuleName, 17, "invalid boost coefficient")
	ErrInvalidPermit            = errors.Register(ModuleName, 18, "invalid permit signature")
	ErrOverflow                 = errors.Register(ModuleName, 19, "arithmetic overflow")
	ErrUnauthorized             = errors.Register(ModuleName, 20, "unauthorized")
)
