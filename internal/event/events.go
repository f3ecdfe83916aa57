package event

const (
	EventGameSettled       Name = "game.settled"
	EventGameExpired       Name = "game.expired"
	EventMarketTick        Name = "market.tick"
	EventTransferCompleted Name = "transfer.completed"
	EventRewardClaimed     Name = "reward.claimed"
	EventEconomicCycle     Name = "economy.cycle"
	EventHeistAttempted    Name = "heist.attempted"
)
