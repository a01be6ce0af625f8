package model

// Properties — плоский generic-мешок атрибутов одного Item.
// Семантика слотов propertie_1..propertie_9 целиком зависит от TypeItem
// владеющего Item и восстанавливается слоем проекции при чтении.
// created/edited/url хранятся как есть и не парсятся.
type Properties struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	// PropertieID равен PropID владеющего Item — строго 1:1.
	PropertieID string `gorm:"size:50;not null;uniqueIndex"`

	Created string `gorm:"size:50;not null"`
	Edited  string `gorm:"size:50;not null"`

	Propertie1 string `gorm:"column:propertie_1;size:100;not null"`
	Propertie2 string `gorm:"column:propertie_2;size:50;not null"`
	Propertie3 string `gorm:"column:propertie_3;size:50;not null"`
	Propertie4 string `gorm:"column:propertie_4;size:50;not null"`
	Propertie5 string `gorm:"column:propertie_5;size:50;not null"`
	Propertie6 string `gorm:"column:propertie_6;size:50;not null"`
	Propertie7 string `gorm:"column:propertie_7;size:50;not null"`
	Propertie8 string `gorm:"column:propertie_8;size:255;not null"`
	Propertie9 string `gorm:"column:propertie_9;size:50;not null"`

	URL string `gorm:"size:255;not null"`
}

func (Properties) TableName() string {
	return "properties"
}

// Slots возвращает девять generic-слотов по порядку.
func (p *Properties) Slots() [9]string {
	return [9]string{
		p.Propertie1, p.Propertie2, p.Propertie3,
		p.Propertie4, p.Propertie5, p.Propertie6,
		p.Propertie7, p.Propertie8, p.Propertie9,
	}
}

// SetSlots заполняет девять generic-слотов по порядку.
func (p *Properties) SetSlots(s [9]string) {
	p.Propertie1, p.Propertie2, p.Propertie3 = s[0], s[1], s[2]
	p.Propertie4, p.Propertie5, p.Propertie6 = s[3], s[4], s[5]
	p.Propertie7, p.Propertie8, p.Propertie9 = s[6], s[7], s[8]
}
