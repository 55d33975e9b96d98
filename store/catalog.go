package store

import "go-campus-canteen/models"

// Catalog mutations are staff intents. The store itself does not check
// roles; the staff routes are gated in the middleware layer.

// AddMenuItem appends the item as given. The caller supplies the id and
// has already derived IsAvailable from the stock it is saving.
func (a *App) AddMenuItem(item models.MenuItem) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.menuItems = append(a.menuItems, item)
}

// UpdateMenuItem replaces the item with the same id wholesale. If no
// item matches, nothing happens.
func (a *App) UpdateMenuItem(item models.MenuItem) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.menuItems {
		if a.menuItems[i].ID == item.ID {
			a.menuItems[i] = item
			return
		}
	}
}

func (a *App) DeleteMenuItem(itemID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept := a.menuItems[:0]
	for _, item := range a.menuItems {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	a.menuItems = kept
}

func (a *App) MenuItems() []models.MenuItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]models.MenuItem, len(a.menuItems))
	copy(items, a.menuItems)
	return items
}

func (a *App) MenuItem(itemID string) (models.MenuItem, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, item := range a.menuItems {
		if item.ID == itemID {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
