package usecase

const (
	promptFirstItem  = "What would you like to order?"
	promptWhatChange = "No problem. What would you like to change?"
	promptOrderType  = "Will that be pickup or delivery?"
	promptAddress    = "What address should we deliver to?"
	promptSpiceClear = "I heard more than one spice level. Which one would you like: Mild, Medium, or Hot?"
)
