package model

type SettingItem struct {
	Key   string `json:"key" gorm:"primaryKey" binding:"required"` // unique key
	Value string `json:"value"`                                    // value
	Flag  int    `json:"flag"`                                     // see conf.Flag*
}

func (s SettingItem) IsDeprecated() bool {
	return s.Flag == 3
}
