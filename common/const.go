package commonconst

// levelDB 所有账户的key （key: AccountsKey - val: 地址->账户信息）
const AccountsKey = "levelDBAccountsKey"

// levelDB 众筹活动状态的key（key: CampaignKey - val: 活动信息）
const CampaignKey = "levelDBCampaignKey"

// levelDB 所有事件的key（key: EventAllDataKey - val: 事件ID->事件）
const EventAllDataKey = "levelDBEventAllDataKey"

// redis 最新喂价的key（由外部喂价程序写入）
const PriceQuoteKey = "escrowPriceQuote"

// redis 事件推送队列的key
const EventListKey = "escrowEventList"
