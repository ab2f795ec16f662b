package departments

type Department struct {
	ID   int64  `json:"id"   gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;uniqueIndex;not null"`
}

func (Department) TableName() string {
	return "departments"
}
