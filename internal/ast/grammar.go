package ast

// Alt is one ordered RHS: a sequence of child labels. An empty Alt is the
// grammar's epsilon production.
type Alt []Label

// Alternatives returns the declared RHS list for a non-terminal label, in
// the fixed declared order the predictive parser's decision rule requires
// (the grammar is LL(1); at most one non-empty alternative can ever accept
// a given lookahead).
func Alternatives(label Label) []Alt {
	switch label {
	case Module:
		return []Alt{
			{FunctionDefinition, Module},
			{},
		}
	case FunctionDefinition:
		return []Alt{
			{TermFunctionName, LParen, VariablesList, RParen, CodeBlock},
		}
	case VariablesList:
		return []Alt{
			{TermVariable, VariablesListExpansion},
			{},
		}
	case VariablesListExpansion:
		return []Alt{
			{Comma, TermVariable, VariablesListExpansion},
			{},
		}
	case CodeBlock:
		return []Alt{
			{LBrace, StatementList, RBrace},
		}
	case StatementList:
		return []Alt{
			{Statement, StatementList},
			{},
		}
	case Statement:
		return []Alt{
			{VariableAssignment, Semi},
			{FunctionCall, Semi},
			{KwWhile, ConditionalEvaluation, CodeBlock},
			{KwIf, ConditionalEvaluation, CodeBlock, ElseStatement},
			{KwReturn, RValue, Semi},
			{KwBreak, Semi},
		}
	case VariableAssignment:
		return []Alt{
			{KwGlobal, TermVariable, Assign, RValue},
			{TermVariable, Assign, RValue},
		}
	case FunctionCall:
		return []Alt{
			{TermFunctionName, LParen, RValueList, RParen},
			{TermBuiltin, LParen, RValueList, RParen},
		}
	case ConditionalEvaluation:
		return []Alt{
			{LBrack, RValue, RBrack},
		}
	case ElseStatement:
		return []Alt{
			{KwElse, CodeBlock},
			{KwElif, ConditionalEvaluation, CodeBlock, ElseStatement},
			{},
		}
	case RValue:
		return []Alt{
			{TermQuotedString},
			{TermVariable},
			{FunctionCall},
		}
	case RValueList:
		return []Alt{
			{RValue, RValueListExpansion},
			{},
		}
	case RValueListExpansion:
		return []Alt{
			{Comma, RValue, RValueListExpansion},
			{},
		}
	default:
		return nil
	}
}
