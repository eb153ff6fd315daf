package cpu

import "github.com/valerio/go-dotmatrix/dotmatrix/bit"

func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.writeByte(c.sp, bit.High(value))
	c.sp--
	c.writeByte(c.sp, bit.Low(value))
}

func (c *CPU) popStack() uint16 {
	low := c.readByte(c.sp)
	c.sp++
	high := c.readByte(c.sp)
	c.sp++

	return bit.Combine(high, low)
}

func (c *CPU) inc(r *uint8) {
	*r++
	value := *r

	c.setFlagToCondition(zeroFlag, value == 0)
	c.setFlagToCondition(halfCarryFlag, (value&0xF) == 0)
	c.resetFlag(subFlag)
}

func (c *CPU) dec(r *uint8) {
	*r--
	value := *r

	c.setFlagToCondition(zeroFlag, value == 0)
	c.setFlagToCondition(halfCarryFlag, (value&0xF) == 0xF)
	c.setFlag(subFlag)
}

func (c *CPU) add(value uint8) {
	result := uint16(c.a) + uint16(value)

	c.setFlagToCondition(carryFlag, result > 0xFF)
	c.setFlagToCondition(halfCarryFlag, (c.a&0xF)+(value&0xF) > 0xF)
	c.resetFlag(subFlag)

	c.a = uint8(result)
	c.setFlagToCondition(zeroFlag, c.a == 0)
}

func (c *CPU) adc(value uint8) {
	carry := c.flagToBit(carryFlag)
	result := uint16(c.a) + uint16(value) + uint16(carry)

	c.setFlagToCondition(carryFlag, result > 0xFF)
	c.setFlagToCondition(halfCarryFlag, (c.a&0xF)+(value&0xF)+carry > 0xF)
	c.resetFlag(subFlag)

	c.a = uint8(result)
	c.setFlagToCondition(zeroFlag, c.a == 0)
}

func (c *CPU) sub(value uint8) {
	c.setFlagToCondition(carryFlag, c.a < value)
	c.setFlagToCondition(halfCarryFlag, (c.a&0xF) < (value&0xF))
	c.setFlag(subFlag)

	c.a -= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
}

func (c *CPU) sbc(value uint8) {
	carry := c.flagToBit(carryFlag)
	result := int16(c.a) - int16(value) - int16(carry)

	c.setFlagToCondition(halfCarryFlag, int16(c.a&0xF)-int16(value&0xF)-int16(carry) < 0)
	c.setFlagToCondition(carryFlag, result < 0)
	c.setFlag(subFlag)

	c.a = uint8(result)
	c.setFlagToCondition(zeroFlag, c.a == 0)
}

func (c *CPU) and(value uint8) {
	c.a &= value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) or(value uint8) {
	c.a |= value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) xor(value uint8) {
	c.a ^= value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) cp(value uint8) {
	c.setFlagToCondition(zeroFlag, c.a == value)
	c.setFlagToCondition(carryFlag, c.a < value)
	c.setFlagToCondition(halfCarryFlag, (c.a&0xF) < (value&0xF))
	c.setFlag(subFlag)
}

// addToHL implements ADD HL, rr with its one internal cycle. Z is untouched.
func (c *CPU) addToHL(value uint16) {
	hl := c.getHL()
	result := uint32(hl) + uint32(value)

	c.setFlagToCondition(carryFlag, result > 0xFFFF)
	c.setFlagToCondition(halfCarryFlag, (hl&0x0FFF)+(value&0x0FFF) > 0x0FFF)
	c.resetFlag(subFlag)

	c.setHL(uint16(result))
	c.clock(4)
}

// addSignedToSP computes SP + e8 for ADD SP,e8 and LD HL,SP+e8. The
// immediate is sign-extended for the sum, but H and C come from the
// unsigned addition of the low nibble/byte.
func (c *CPU) addSignedToSP() uint16 {
	value := c.readImmediate()
	result := c.sp + uint16(int8(value))

	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (c.sp&0xF)+(uint16(value)&0xF) > 0xF)
	c.setFlagToCondition(carryFlag, (c.sp&0xFF)+uint16(value) > 0xFF)

	return result
}

// daa performs BCD correction after an arithmetic op, keyed on (N, H, C).
func (c *CPU) daa() {
	value := uint16(c.a)

	if c.isSetFlag(subFlag) {
		if c.isSetFlag(halfCarryFlag) {
			value = (value - 0x06) & 0xFF
		}
		if c.isSetFlag(carryFlag) {
			value -= 0x60
		}
	} else {
		if c.isSetFlag(halfCarryFlag) || value&0xF > 0x09 {
			value += 0x06
		}
		if c.isSetFlag(carryFlag) || value > 0x9F {
			value += 0x60
		}
	}

	if value&0x100 != 0 {
		c.setFlag(carryFlag)
	}
	c.resetFlag(halfCarryFlag)

	c.a = uint8(value)
	c.setFlagToCondition(zeroFlag, c.a == 0)
}

// rotate/shift helpers shared by the CB-prefixed opcodes. These set Z from
// the result; the four A-register rotates (RLCA & co.) clear Z afterwards.

func (c *CPU) rlc(r *uint8) {
	value := *r
	*r = (value << 1) | (value >> 7)

	c.setFlagToCondition(carryFlag, value > 0x7F)
	c.setFlagToCondition(zeroFlag, *r == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

func (c *CPU) rl(r *uint8) {
	value := *r
	carry := c.flagToBit(carryFlag)
	*r = (value << 1) | carry

	c.setFlagToCondition(carryFlag, value > 0x7F)
	c.setFlagToCondition(zeroFlag, *r == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

func (c *CPU) rrc(r *uint8) {
	value := *r
	*r = (value >> 1) | (value << 7)

	c.setFlagToCondition(carryFlag, value&1 == 1)
	c.setFlagToCondition(zeroFlag, *r == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

func (c *CPU) rr(r *uint8) {
	value := *r
	carry := c.flagToBit(carryFlag) << 7
	*r = (value >> 1) | carry

	c.setFlagToCondition(carryFlag, value&1 == 1)
	c.setFlagToCondition(zeroFlag, *r == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

func (c *CPU) sla(r *uint8) {
	value := *r
	*r = value << 1

	c.setFlagToCondition(carryFlag, value > 0x7F)
	c.setFlagToCondition(zeroFlag, *r == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

func (c *CPU) sra(r *uint8) {
	value := *r
	*r = (value >> 1) | (value & 0x80)

	c.setFlagToCondition(carryFlag, value&1 == 1)
	c.setFlagToCondition(zeroFlag, *r == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

func (c *CPU) srl(r *uint8) {
	value := *r
	*r = value >> 1

	c.setFlagToCondition(carryFlag, value&1 == 1)
	c.setFlagToCondition(zeroFlag, *r == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

func (c *CPU) swap(r *uint8) {
	*r = (*r << 4) | (*r >> 4)

	c.setFlagToCondition(zeroFlag, *r == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) bitTest(index uint8, value uint8) {
	c.setFlagToCondition(zeroFlag, !bit.IsSet(index, value))
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

// control flow helpers: taken branches cost one extra internal cycle,
// calls/returns one more around the stack traffic.

func (c *CPU) jr(condition bool) {
	offset := int8(c.readImmediate())
	if condition {
		c.pc += uint16(offset)
		c.clock(4)
	}
}

func (c *CPU) jp(condition bool) {
	target := c.readImmediateWord()
	if condition {
		c.pc = target
		c.clock(4)
	}
}

func (c *CPU) call(condition bool) {
	target := c.readImmediateWord()
	if condition {
		c.clock(4)
		c.pushStack(c.pc)
		c.pc = target
	}
}

func (c *CPU) ret() {
	c.pc = c.popStack()
	c.clock(4)
}

func (c *CPU) retConditional(condition bool) {
	c.clock(4)
	if condition {
		c.ret()
	}
}

func (c *CPU) rst(vector uint16) {
	c.clock(4)
	c.pushStack(c.pc)
	c.pc = vector
}

func (c *CPU) push(value uint16) {
	c.clock(4)
	c.pushStack(value)
}

// ei schedules IME for after the next instruction; di drops it at once.
func (c *CPU) ei() {
	c.imeDelay = 2
}

func (c *CPU) di() {
	c.ime = false
	c.imeDelay = 0
}
