// Package menu implements the menu item entity: a sellable item with a price
// and a mutable stock counter. Stock reservation is split between a domain
// dry-run check (CanReserve) and a conditional decrement in the persistence
// layer, which together make overselling impossible even under races.
package menu
