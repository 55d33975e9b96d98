package store

import "go-campus-canteen/models"

// SetUser records the current session identity and persists it so the
// session survives a reload.
func (a *App) SetUser(user models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = &user
	a.saveUser()
}

func (a *App) ClearUser() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
	a.saveUser()
}

// User returns the current session identity, or false when nobody is
// logged in.
func (a *App) User() (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.user == nil {
		return models.User{}, false
	}
	return *a.user, true
}

// RegisterAccount stores a signed-up account keyed by email. Password
// is expected to arrive already hashed.
func (a *App) RegisterAccount(account models.Account) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accounts[account.Email] = account
	a.saveAccounts()
}

func (a *App) AccountByEmail(email string) (models.Account, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.accounts[email]
	return account, ok
}
