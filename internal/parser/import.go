package parser

import (
	"ripple/internal/ast"
	"ripple/internal/source"
	"ripple/internal/token"
)

// parseImportItem парсит 'import path.seg.seg;'.
func (p *Parser) parseImportItem() (ast.ItemID, bool) {
	importTok := p.advance() // съедаем 'import'

	segments, pathSpan, ok := p.parseImportPath()
	if !ok {
		return ast.NoItemID, false
	}

	semiSpan, ok := p.expectTerminator("import item")
	if !ok {
		return ast.NoItemID, false
	}

	span := coverOptional(importTok.Span.Cover(pathSpan), semiSpan)
	return p.arenas.Items.NewImport(span, segments, pathSpan, semiSpan), true
}

// parseImportPath парсит путь модуля: идентификаторы через точку.
func (p *Parser) parseImportPath() ([]source.StringID, source.Span, bool) {
	first, firstSpan, ok := p.parseIdent()
	if !ok {
		return nil, source.Span{}, false
	}

	segments := []source.StringID{first}
	pathSpan := firstSpan

	for p.at(token.Dot) {
		p.advance() // съедаем '.'
		seg, segSpan, ok := p.parseIdent()
		if !ok {
			return nil, source.Span{}, false
		}
		segments = append(segments, seg)
		pathSpan = pathSpan.Cover(segSpan)
	}

	return segments, pathSpan, true
}
