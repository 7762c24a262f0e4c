package repository

// Transaction is the stored shape of a locally-known transaction record,
// keyed by the wallet-local id and owned by one wallet address.
type Transaction struct {
	ID           string `gorm:"primaryKey;size:64"`
	OwnerAddress string `gorm:"size:42;index;not null"`
	ChainID      uint64 `gorm:"not null"`
	FromAddress  string `gorm:"size:42;not null"`
	Hash         string `gorm:"size:66;index"` // empty until broadcast
	OrderHash    string `gorm:"size:66;index"` // set only for UniswapX orders
	Routing      string `gorm:"size:16;not null"`
	Status       string `gorm:"size:24;not null"`
	TypeInfo     []byte `gorm:"type:jsonb"` // tagged envelope, see transaction.MarshalTypeInfo
	AddedTime    int64  `gorm:"not null;index"`
	NetworkFee   []byte `gorm:"type:jsonb"`
	EncodedOrder string `gorm:"type:text"`
	DappInfo     []byte `gorm:"type:jsonb"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
