// search строит запрос к полнотекстовому поиску PostgreSQL (to_tsquery).
package search

import (
	"strings"
	"unicode"
)

// andOperator — оператор to_tsquery для «все термы должны совпасть».
const andOperator = " & "

// BuildTextQuery разбивает строку на термы и соединяет их через AND.
//
// Разделителем терма считается любой символ, кроме буквы, цифры и '_'.
// Так операторы tsquery (& | ! : * ( )) не попадают в запрос, а составные
// слова вроде "john-doe" дают те же части, что парсер simple кладёт в индекс.
//
// Пустой результат означает «искать нечего»: вызывающий возвращает пустую
// страницу, не обращаясь к хранилищу.
//
//	"hello  world" -> "hello & world"
//	"john-doe"     -> "john & doe"
//	"go!"          -> "go"
//	"   "          -> ""
func BuildTextQuery(raw string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(raw), isSeparator), andOperator)
}

// isSeparator сообщает, разделяет ли руна термы.
func isSeparator(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}
