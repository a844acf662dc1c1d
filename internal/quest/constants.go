package quest

// Kind selects which counter a quest tracks.
type Kind string

const (
	KindTotalClicks    Kind = "total_clicks"
	KindTotalEarned    Kind = "total_earned"
	KindCollectionSize Kind = "collection_size"
	KindUpgradeLevels  Kind = "upgrade_levels"
)

// Definition describes one quest. Progress is derived from the live
// aggregate, never stored.
type Definition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Kind        Kind    `json:"kind"`
	Target      float64 `json:"target"`
	Reward      float64 `json:"reward"`
}

// Definitions returns all quests in display order.
func Definitions() []Definition {
	return []Definition{
		{ID: "q_click_1", Name: "Baby Steps", Description: "Click the cookie 50 times.", Kind: KindTotalClicks, Target: 50, Reward: 200},
		{ID: "q_click_2", Name: "Finger Workout", Description: "Click the cookie 250 times.", Kind: KindTotalClicks, Target: 250, Reward: 800},
		{ID: "q_click_3", Name: "Carpal Tunnel", Description: "Click the cookie 1,000 times.", Kind: KindTotalClicks, Target: 1000, Reward: 2500},
		{ID: "q_click_4", Name: "Machine", Description: "Click the cookie 5,000 times.", Kind: KindTotalClicks, Target: 5000, Reward: 10000},

		{ID: "q_earn_1", Name: "Pocket Change", Description: "Earn 1,000 Bits total.", Kind: KindTotalEarned, Target: 1000, Reward: 500},
		{ID: "q_earn_2", Name: "Entrepreneur", Description: "Earn 10,000 Bits total.", Kind: KindTotalEarned, Target: 10000, Reward: 2000},
		{ID: "q_earn_3", Name: "Tycoon", Description: "Earn 100,000 Bits total.", Kind: KindTotalEarned, Target: 100000, Reward: 15000},
		{ID: "q_earn_4", Name: "Millionaire", Description: "Earn 1,000,000 Bits total.", Kind: KindTotalEarned, Target: 1000000, Reward: 100000},

		{ID: "q_col_1", Name: "Collector I", Description: "Own 5 unique cookies.", Kind: KindCollectionSize, Target: 5, Reward: 1000},
		{ID: "q_col_2", Name: "Collector II", Description: "Own 15 unique cookies.", Kind: KindCollectionSize, Target: 15, Reward: 5000},
		{ID: "q_col_3", Name: "Curator", Description: "Own 30 unique cookies.", Kind: KindCollectionSize, Target: 30, Reward: 20000},

		{ID: "q_upg_1", Name: "Tech Savvy", Description: "Have 5 total upgrade levels.", Kind: KindUpgradeLevels, Target: 5, Reward: 1500},
		{ID: "q_upg_2", Name: "Maximized", Description: "Have 15 total upgrade levels.", Kind: KindUpgradeLevels, Target: 15, Reward: 10000},
	}
}

// Log messages
const (
	LogMsgQuestClaimed = "Quest reward claimed"
)
