package cnmoney

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUpper(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hundred", "100", "壹佰元整"},
		{"with fraction", "1234.56", "壹仟贰佰叁拾肆元伍角陆分"},
		{"six digits", "123346", "壹拾贰万叁仟叁佰肆拾陆元整"},
		{"inner zeros", "10005", "壹万零伍元整"},
		{"exact hundred million", "100000000", "壹亿元整"},
		{"ten digits", "1000000000", "壹拾亿元整"},
		{"largest", "9999999999", "玖拾玖亿玖仟玖佰玖拾玖万玖仟玖佰玖拾玖元整"},
		{"tenths only", "10.5", "壹拾元伍角整"},
		{"zero hundredths dropped", "10.50", "壹拾元伍角整"},
		{"zero tenths dropped", "10.05", "壹拾元伍分"},
		{"zero fraction", "1.00", "壹元整"},
		{"fraction truncated", "1.239", "壹元贰角叁分"},
		{"fraction without integer", "0.5", "伍角整"},
		{"cents without integer", "0.05", "伍分"},
		{"separators and sign", "￥1,234.50", "壹仟贰佰叁拾肆元伍角整"},
		{"spaces", " 1 000 ", "壹仟元整"},
		{"leading zeros", "00100", "壹佰元整"},
		{"zero", "0", ""},
		{"zero with fraction", "0.00", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUpper(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUpper_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"abc", ErrInvalidAmount},
		{"12a", ErrInvalidAmount},
		{"-5", ErrInvalidAmount},
		{"1e3", ErrInvalidAmount},
		{"1.2.3", ErrInvalidAmount},
		{"12345678901", ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ToUpper(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConvert(t *testing.T) {
	assert.Equal(t, "", Convert("0"))
	assert.Equal(t, "壹佰元整", Convert("100"))
	assert.Equal(t, "请检查小写金额是否正确", Convert("abc"))
	assert.Equal(t, "位数过大，无法计算", Convert("12345678901"))
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, "壹仟贰佰叁拾肆元伍角陆分", FromFloat(1234.56))
	assert.Equal(t, "", FromFloat(0))
	assert.Equal(t, "请检查小写金额是否正确", FromFloat(-1))
}
