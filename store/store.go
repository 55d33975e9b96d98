// Package store owns the application state: the menu catalog, the
// current user's cart, the placed orders, the queue counter and the
// session identity. It replaces the context-injected global of the
// original app with an explicit object handed to whoever needs it.
//
// Every mutation is serialized through one mutex, so intents are
// handled one at a time the way the single-threaded original did.
// The store trusts its callers: lookups that miss are silent no-ops
// and role checks stay in the presentation layer.
package store

import (
	"sync"

	"go-campus-canteen/localstore"
	"go-campus-canteen/models"
)

const (
	keyUser     = "user"
	keyCart     = "cart"
	keyOrders   = "orders"
	keyAccounts = "accounts"
)

type App struct {
	mu      sync.Mutex
	storage *localstore.Store

	user        *models.User
	cart        []models.CartItem
	menuItems   []models.MenuItem
	orders      []models.Order
	accounts    map[string]models.Account
	queueNumber int
}

// New loads persisted session, cart and orders, then seeds the catalog.
// The catalog is deliberately not persisted: it resets to the seed list
// on every start, as the original app did. The queue counter starts at 1
// per process and is not persisted either (see DESIGN.md).
func New(storage *localstore.Store) *App {
	app := &App{
		storage:     storage,
		accounts:    map[string]models.Account{},
		queueNumber: 1,
	}
	if storage != nil {
		var user models.User
		if storage.Get(keyUser, &user) && user.ID != "" {
			app.user = &user
		}
		storage.Get(keyCart, &app.cart)
		storage.Get(keyOrders, &app.orders)
		storage.Get(keyAccounts, &app.accounts)
	}
	if len(app.orders) == 0 {
		app.orders = sampleOrders()
	}
	app.menuItems = seedMenuItems()
	return app
}

func (a *App) saveUser() {
	if a.storage == nil {
		return
	}
	if a.user == nil {
		a.storage.Delete(keyUser)
		return
	}
	a.storage.Set(keyUser, a.user)
}

func (a *App) saveCart() {
	if a.storage != nil {
		a.storage.Set(keyCart, a.cart)
	}
}

func (a *App) saveOrders() {
	if a.storage != nil {
		a.storage.Set(keyOrders, a.orders)
	}
}

func (a *App) saveAccounts() {
	if a.storage != nil {
		a.storage.Set(keyAccounts, a.accounts)
	}
}
