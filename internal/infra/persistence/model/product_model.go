// Package model contains the GORM mappings of the storefront tables.
// Column names follow the Portuguese schema shared with the web client.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'produtos' table.
type ProductModel struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Title           string          `gorm:"column:titulo;type:varchar(255);not null;index"`
	Author          string          `gorm:"column:autor;type:varchar(255);not null;index"`
	Description     string          `gorm:"column:descricao;type:text"`
	Genre           string          `gorm:"column:genero;type:varchar(100);index"`
	Language        string          `gorm:"column:idioma;type:varchar(50)"`
	PageCount       int             `gorm:"column:numero_paginas;not null;default:0"`
	PublicationYear int             `gorm:"column:ano_publicacao;not null;default:0"`
	Price           decimal.Decimal `gorm:"column:preco;type:numeric(10,2);not null;default:0"`
	CoverURL        string          `gorm:"column:url_capa;type:text"`
	ContentURL      string          `gorm:"column:url_arquivo_pdf;type:text"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "produtos"
}
