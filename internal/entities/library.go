package entities

// Table and column names keep the wire format of the public API, so a
// listed row serializes exactly as it is stored.

type Book struct {
	ID              uint    `gorm:"column:id_livro;primaryKey" json:"id_livro"`
	Author          *string `gorm:"column:autor;size:255" json:"autor"`
	PublicationDate *Date   `gorm:"column:data_publicacao;type:date" json:"data_publicacao" swaggertype:"string" example:"1899-01-01"`
	Title           *string `gorm:"column:titulo;size:255" json:"titulo"`
}

func (Book) TableName() string { return "livro" }

type Customer struct {
	ID    uint    `gorm:"column:id_cliente;primaryKey" json:"id_cliente"`
	Email *string `gorm:"column:email;size:255" json:"email"`
	Phone *string `gorm:"column:telefone;size:20" json:"telefone"`
	// NationalID is the customer's CPF; unique across all customers.
	NationalID *string `gorm:"column:cpf;size:20;uniqueIndex:idx_cliente_cpf" json:"cpf"`
}

func (Customer) TableName() string { return "cliente" }

// Loan records that a book was lent to a customer. Loans are immutable once
// created and can only be deleted.
type Loan struct {
	ID         uint `gorm:"column:id_emprestimo;primaryKey" json:"id_emprestimo"`
	BookID     uint `gorm:"column:idlivro;not null;index" json:"idlivro"`
	CustomerID uint `gorm:"column:idcliente;not null;index" json:"idcliente"`

	// Associations exist only so the schema carries the foreign keys.
	Book     *Book     `gorm:"foreignKey:BookID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-" swaggerignore:"true"`
	Customer *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-" swaggerignore:"true"`
}

func (Loan) TableName() string { return "emprestimo" }
